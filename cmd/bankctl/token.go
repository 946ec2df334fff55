package main

import (
	"fmt"
	"time"

	"sat-prep/internal/service"

	"github.com/spf13/cobra"
)

// 개발용 토큰. 운영 토큰은 인증 서비스가 발급한다.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a development access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		authService, err := service.NewAuthService(loadConfig().Auth)
		if err != nil {
			return err
		}
		token, err := authService.GenerateAccessToken(userID, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("user", "", "User ID to put in the token")
	tokenCmd.Flags().Duration("ttl", time.Hour, "Token lifetime")
	_ = tokenCmd.MarkFlagRequired("user")
}
