package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/server/middleware"
	"github.com/jonathan/hr-copilot/internal/types"
)

// handleQuery runs one query through the pipeline. The identity resolved by
// the auth middleware overrides whatever the body claims; unauthenticated
// callers run as guest and get gated accordingly.
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req types.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrMalformedRequest{Cause: err}).Error())
		return
	}

	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	req.User = middleware.GetUser(r)
	req.History = req.BoundHistory(s.maxHistory)

	requestID := uuid.New().String()
	logger := s.logger.With(zap.String("request_id", requestID))
	logger.Info("query accepted",
		zap.String("user_id", req.User.UserID),
		zap.String("role", string(req.User.Role)))

	// The pipeline runs one request at a time; later arrivals queue here
	// until the in-flight request finishes or the client gives up.
	if err := s.admit.Acquire(r.Context(), 1); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "request cancelled while queued")
		return
	}
	defer s.admit.Release(1)

	resp, err := s.handler.Handle(r.Context(), req)
	if err != nil {
		logger.Error("query failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("X-Request-ID", requestID)
	s.jsonResponse(w, http.StatusOK, resp)
}

// tokenRequest is the dev-facing token minting request.
type tokenRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// handleIssueToken mints a JWT for the given user and role. This endpoint
// backs local development and tests; production deployments front it with a
// real identity provider.
func (s *Server) handleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrMalformedRequest{Cause: err}).Error())
		return
	}
	if req.UserID == "" {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{Field: "user_id", Message: "must not be empty"}).Error())
		return
	}

	user := types.UserContext{UserID: req.UserID, Role: types.Role(req.Role)}.Normalize()
	token, err := s.jwtService.GenerateToken(user.UserID, user.Role)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  string(user.Role),
	})
}
