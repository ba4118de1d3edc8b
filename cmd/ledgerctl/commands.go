package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/angadsxngh/rent-management-backend/internal/archive"
	"github.com/angadsxngh/rent-management-backend/internal/config"
	"github.com/angadsxngh/rent-management-backend/internal/metrics"
	"github.com/angadsxngh/rent-management-backend/internal/repository/postgres"
	"github.com/angadsxngh/rent-management-backend/internal/service"
	"github.com/angadsxngh/rent-management-backend/pkg/logger"
	"github.com/angadsxngh/rent-management-backend/pkg/utils"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the ledger schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConnections, err := config.NewDatabaseConnections()
			if err != nil {
				return err
			}
			defer dbConnections.Close()

			if err := config.Migrate(dbConnections.Writer); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")
			return nil
		},
	}
}

func accrueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accrue",
		Short: "Run one accrual pass over every rented property",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			schedulerConfig, err := config.DefaultSchedulerConfig()
			if err != nil {
				return err
			}

			dbConnections, err := config.NewDatabaseConnections()
			if err != nil {
				return err
			}
			defer dbConnections.Close()

			engine := service.NewAccrualEngine(
				postgres.NewPostgresRepository(dbConnections),
				newLogger(),
				metrics.NewUnregistered(),
				schedulerConfig.BillingLocation,
				schedulerConfig.AccrualConcurrency,
			)
			result, err := engine.AccrueBalances(cmd.Context(), now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Accrued %d of %d rented properties (%d failed) as of %s\n",
				result.Accrued, result.Scanned, result.Failed, now.Format(time.RFC3339))
			return nil
		},
	}
	cmd.Flags().String("now", "", "Evaluate as of this RFC3339 time or YYYY-MM-DD date (default: current time)")
	return cmd
}

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Delete requests older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			now, err := nowFlag(cmd)
			if err != nil {
				return err
			}
			policy, err := config.DefaultRetentionPolicy()
			if err != nil {
				return err
			}

			dbConnections, err := config.NewDatabaseConnections()
			if err != nil {
				return err
			}
			defer dbConnections.Close()

			var archiver service.Archiver
			if policy.Archive {
				s3Config := config.DefaultS3Config()
				s3Client, err := s3Config.GetClient(cmd.Context())
				if err != nil {
					return err
				}
				archiver = archive.NewS3Archiver(s3Client, s3Config)
			}

			sweeper, err := service.NewSweepService(
				postgres.NewPostgresRepository(dbConnections),
				archiver,
				policy,
				newLogger(),
				metrics.NewUnregistered(),
			)
			if err != nil {
				return err
			}
			result, err := sweeper.ExpirySweep(cmd.Context(), now)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d requests and %d payment requests created before %s\n",
				result.RequestsDeleted, result.PaymentRequestsDeleted, result.Cutoff.Format(time.RFC3339))
			if result.ArchiveKey != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Archived to %s\n", result.ArchiveKey)
			}
			return nil
		},
	}
	cmd.Flags().String("now", "", "Evaluate as of this RFC3339 time or YYYY-MM-DD date (default: current time)")
	return cmd
}

func nowFlag(cmd *cobra.Command) (time.Time, error) {
	raw, _ := cmd.Flags().GetString("now")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	return utils.ParseInstant(raw)
}

func newLogger() *logger.Logger {
	return logger.NewLogger(os.Getenv("APP_ENV"))
}
