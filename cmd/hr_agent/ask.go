package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/config"
	"github.com/jonathan/hr-copilot/internal/observability"
	"github.com/jonathan/hr-copilot/internal/routing"
	"github.com/jonathan/hr-copilot/internal/types"
)

var (
	askConfigPath string
	askRole       string
	askUserID     string
	askVerbose    bool
	askJSON       bool
)

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Run one query through the pipeline and print the answer",
	Long: `Run a single query end-to-end without starting the server.

The role is taken at face value; use this command for local exploration, not
as an access control boundary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askConfigPath, "config", "", "Path to config.json file (environment variables win)")
	askCmd.Flags().StringVar(&askRole, "role", "guest", "Role to run the query as (guest, manager, hr, recruiter, admin)")
	askCmd.Flags().StringVar(&askUserID, "user", "", "User ID to attribute the query to")
	askCmd.Flags().BoolVarP(&askVerbose, "verbose", "v", false, "Print the routed plan, traces, and governance verdict")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "Print the raw response as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	ctx := context.Background()

	cfg, err := config.Load(askConfigPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := zap.NewNop()
	if askVerbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	sup, closer, err := buildSupervisor(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closer()

	req := types.QueryRequest{
		Query: query,
		User:  types.UserContext{UserID: askUserID, Role: types.Role(askRole)},
	}
	if err := req.Validate(); err != nil {
		return err
	}

	resp, err := sup.Handle(ctx, req)
	if err != nil {
		return err
	}

	if askJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if askVerbose {
		printer := observability.NewPrinter(os.Stdout)
		plan := routing.Route(query)
		printer.PrintPlan(&plan)
		printer.PrintTraces(resp.ToolTraces)
		printer.PrintGovernance(resp.Governance)
	}

	fmt.Println(resp.Answer)
	return nil
}
