package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hr-copilot/internal/config"
	"github.com/jonathan/hr-copilot/internal/server"
	"github.com/jonathan/hr-copilot/internal/types"
)

var (
	tokenUserID string
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a JWT for local development",
	Long:  `Generate a signed bearer token carrying a user ID and role, using JWT_SECRET from the environment.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user", "", "User ID to embed in the token (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "guest", "Role to embed in the token")
	_ = tokenCmd.MarkFlagRequired("user")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return err
	}

	user := types.UserContext{UserID: tokenUserID, Role: types.Role(tokenRole)}.Normalize()
	token, err := server.NewJWTService(jwtConfig).GenerateToken(user.UserID, user.Role)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
