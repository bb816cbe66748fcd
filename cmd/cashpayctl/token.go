package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/utils"
	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the initiation endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.CreateNewConfig()
			if conf.JWTConfig.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}

			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			token, err := utils.CreateJWTToken(subject, ttl, conf.JWTConfig.JWTSecret, conf.JWTConfig.JWTKid)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringP("subject", "s", "crm", "Token subject")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")

	return cmd
}
