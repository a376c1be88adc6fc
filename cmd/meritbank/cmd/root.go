// Package cmd wires the meritbank CLI: the transaction engine, the
// governance gate and the reporting commands over the bank documents.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/merit-guild/meritbank/internal/config"
	"github.com/merit-guild/meritbank/internal/events/kafka"
	"github.com/merit-guild/meritbank/internal/interfaces"
	"github.com/merit-guild/meritbank/internal/log"
	"github.com/merit-guild/meritbank/internal/models"
	"github.com/merit-guild/meritbank/internal/models/events"
	"github.com/merit-guild/meritbank/internal/storage/file"
	"github.com/merit-guild/meritbank/internal/storage/postgres"
)

var (
	// cfgFile represents the config file path.
	cfgFile string

	// verbosity sets the logger verbosity level.
	verbosity string

	// bankDir overrides the configured bank directory.
	bankDir string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "meritbank",
	Short: "Maintain and validate the community merit ledger",
	Long: `meritbank maintains the shared merit ledger (balances.json and
transactions.json) and enforces the community's governance rules on
proposed changes to it before they become the trusted state.`,
	SilenceUsage:      true,
	PersistentPreRunE: initRuntime,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.meritbank.yaml)")
	rootCmd.PersistentFlags().StringVar(&verbosity, "verbosity", "warn", "logger verbosity level ('debug', 'info', 'warn', 'error')")
	rootCmd.PersistentFlags().StringVar(&bankDir, "bank", "", "bank directory holding balances.json and transactions.json")
}

func initRuntime(cmd *cobra.Command, args []string) error {
	if err := log.Init(verbosity); err != nil {
		return err
	}
	loaded, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if bankDir != "" {
		loaded.BankDir = bankDir
	}
	cfg = loaded
	return nil
}

func bankStore() *file.Store {
	return file.NewStore(cfg.BankDir)
}

// recordTransaction persists the mutated ledger and runs the optional
// side channels: the Postgres archive mirror and the Kafka feed. The
// documents are the source of truth; a side-channel failure is logged
// and does not undo the save.
func recordTransaction(ctx context.Context, store interfaces.SnapshotStore, l *models.Ledger, tx models.Transaction) error {
	if err := store.Save(ctx, l); err != nil {
		return err
	}

	if cfg.DatabaseURL != "" {
		if err := archiveTransaction(ctx, l, tx); err != nil {
			log.Error("failed to archive transaction", zap.Int64("id", tx.ID), zap.Error(err))
		}
	}

	if len(cfg.KafkaBrokers) > 0 {
		if err := publishTransaction(tx); err != nil {
			log.Error("failed to publish transaction", zap.Int64("id", tx.ID), zap.Error(err))
		}
	}

	return nil
}

func archiveTransaction(ctx context.Context, l *models.Ledger, tx models.Transaction) error {
	archive, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer archive.Close()

	if err := archive.EnsureSchema(ctx); err != nil {
		return err
	}
	return archive.Record(ctx, tx, l.Balances)
}

func publishTransaction(tx models.Transaction) error {
	publisher := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	defer publisher.Close()

	return publisher.Publish(cfg.KafkaTopic, events.TransactionRecorded{
		EventID:       uuid.New().String(),
		TransactionID: tx.ID,
		From:          tx.From,
		To:            tx.To,
		Amount:        tx.Amount,
		Reason:        tx.Reason,
		OccurredAt:    time.Now().UTC(),
	})
}

func printTransaction(tx models.Transaction) error {
	data, err := json.MarshalIndent(tx, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
