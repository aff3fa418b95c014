package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Role is a user's access level. Unknown roles degrade to guest policy at
// the RBAC gate rather than failing the request.
type Role string

// Role constants enumerate the closed role set.
const (
	RoleGuest     Role = "guest"
	RoleManager   Role = "manager"
	RoleHR        Role = "hr"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// UserContext identifies the requesting user and their role.
type UserContext struct {
	UserID string `json:"user_id"`
	Role   Role   `json:"role"`
}

// Normalize fills safe defaults for missing fields: anonymous user id and
// guest role, with the role lower-cased for table lookups.
func (u UserContext) Normalize() UserContext {
	out := u
	if out.UserID == "" {
		out.UserID = "anonymous"
	}
	if out.Role == "" {
		out.Role = RoleGuest
	} else {
		out.Role = Role(strings.ToLower(string(out.Role)))
	}
	return out
}

// Turn is one prior conversation message, ordered oldest-first.
type Turn struct {
	Role string `json:"role" validate:"required"`
	Text string `json:"text"`
}

// QueryRequest is the wire contract for one supervisor invocation.
type QueryRequest struct {
	Query   string      `json:"query" validate:"required,min=1"`
	History []Turn      `json:"history,omitempty" validate:"dive"`
	User    UserContext `json:"user"`
}

// Validate validates the QueryRequest using the validator.
func (r *QueryRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// BoundHistory returns the most recent max turns, preserving order.
// A non-positive max returns the history unchanged.
func (r *QueryRequest) BoundHistory(max int) []Turn {
	if max <= 0 || len(r.History) <= max {
		return r.History
	}
	return r.History[len(r.History)-max:]
}
