package main

import (
	"fmt"
	"net/http"

	"github.com/alimikegami/point-of-sales/cash-payment-service/pkg/httpclient"
	"github.com/spf13/cobra"
)

func confirmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirm [confirmation-url]",
		Short: "Confirm a cash payment by calling its confirmation URL",
		Long: `Call the confirmation URL issued when the cash payment was initiated.
The contribution moves to Completed on the first call; later calls are
accepted and change nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, body, err := httpclient.SendRequest(cmd.Context(), httpclient.HttpRequest{
				URL:    args[0],
				Method: http.MethodGet,
			})
			if err != nil {
				return err
			}

			switch {
			case status != http.StatusOK:
				return fmt.Errorf("confirmation rejected (%d): %s", status, body)
			case len(body) == 0:
				fmt.Fprintln(cmd.OutOrStdout(), "already confirmed")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "confirmed")
			}
			return nil
		},
	}
}
