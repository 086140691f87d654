package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	redisclient "github.com/KirkDiggler/rpg-spellwizard/internal/redis"
	spelldraft "github.com/KirkDiggler/rpg-spellwizard/internal/repositories/spell_draft"
)

var (
	repairDelete  bool
	repairReindex bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Scan Redis for corrupted spell documents",
	Long: `Scan every spell document in Redis and validate it against the spell schema.
Corrupted documents are reported; --delete removes them and --reindex rebuilds owner indexes.`,
	RunE: runRepair,
}

func init() {
	repairCmd.Flags().BoolVar(&repairDelete, "delete", false, "Delete corrupted documents")
	repairCmd.Flags().BoolVar(&repairReindex, "reindex", false, "Rebuild owner index sets from valid documents")
	rootCmd.AddCommand(repairCmd)
}

func runRepair(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if cfg.Storage != StorageRedis {
		return fmt.Errorf("repair only supports redis storage, configured storage is %s", cfg.Storage)
	}

	ctx := context.Background()
	client, err := redisclient.NewClient(cfg.RedisEndpoints, &redisclient.Options{PoolSize: cfg.RedisPoolSize})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	if err := redisclient.Ping(ctx, client); err != nil {
		return err
	}

	fmt.Printf("Connected to Redis: %v\n", cfg.RedisEndpoints)
	fmt.Println("Scanning for corrupted spell documents...")

	report, err := spelldraft.AuditRedis(ctx, client, spelldraft.AuditOptions{
		DeleteCorrupted: repairDelete,
		RebuildIndex:    repairReindex,
	})
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	fmt.Printf("\nChecked %d documents, found %d corrupted\n", report.Checked, len(report.Corrupted))
	for _, c := range report.Corrupted {
		fmt.Printf("  - %s: %s\n", c.Key, c.Reason)
	}
	if repairDelete {
		fmt.Printf("Deleted %d documents\n", len(report.Deleted))
	}
	if repairReindex {
		fmt.Printf("Reindexed %d spells\n", report.Reindexed)
	}
	return nil
}
