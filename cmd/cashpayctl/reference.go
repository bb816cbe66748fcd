package main

import (
	"fmt"

	"github.com/alimikegami/point-of-sales/cash-payment-service/config"
	redisinfra "github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/cache/redis"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/infrastructure/database/postgres"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/repository"
	"github.com/alimikegami/point-of-sales/cash-payment-service/internal/service"
	"github.com/spf13/cobra"
)

func nextReferenceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "next-reference",
		Short: "Allocate a transaction reference against the configured store",
		Long: `Allocate a transaction reference the way the service does, without
writing a ledger row. With Redis configured the shared counter is advanced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.CreateNewConfig()

			mode, _ := cmd.Flags().GetString("mode")
			if mode == "" {
				mode = conf.ProcessorConfig.Mode
			}

			db, err := postgres.GetDBInstance(conf.PostgreSQLConfig)
			if err != nil {
				return err
			}
			defer db.Close()

			var sequencer service.Sequencer
			if conf.RedisConfig.Address != "" {
				rdb, err := redisinfra.CreateRedisClient(conf.RedisConfig)
				if err != nil {
					return err
				}
				defer rdb.Close()
				sequencer = redisinfra.CreateSequencer(rdb)
			}

			allocator := service.CreateReferenceAllocator(repository.CreatePaymentRepository(db), sequencer)
			ref, err := allocator.Allocate(cmd.Context(), mode)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ref)
			return nil
		},
	}

	cmd.Flags().StringP("mode", "m", "", "Processor mode (live, test); defaults to PROCESSOR_MODE")

	return cmd
}
