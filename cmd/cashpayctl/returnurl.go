package main

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/returnurl"
	"github.com/spf13/cobra"
)

func encodeURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode-url [url]",
		Short: "Encode a return URL into a callback token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), returnurl.Encode(args[0]))
			return nil
		},
	}
}

func decodeURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-url [token]",
		Short: "Decode a callback token back into its return URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			decoded, err := returnurl.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), decoded)
			return nil
		},
	}
}

func upsertSuccessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upsert-success [url]",
		Short: "Show the URL a confirmed payer is sent to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), returnurl.UpsertSuccessFlag(args[0]))
			return nil
		},
	}
}
