// Package client provides test commands for the spell wizard gRPC service
package client

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the spell wizard",
	Long:  `Client commands allow you to exercise the spell wizard by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Spell commands
	ClientCmd.AddCommand(createSpellCmd)
	ClientCmd.AddCommand(getSpellCmd)
	ClientCmd.AddCommand(listSpellsCmd)
	ClientCmd.AddCommand(deleteSpellCmd)

	// Conditional commands
	ClientCmd.AddCommand(enableConditionalCmd)
	ClientCmd.AddCommand(setFormulaCmd)
	ClientCmd.AddCommand(resolveCmd)

	// Trigger commands
	ClientCmd.AddCommand(listTriggersCmd)
	ClientCmd.AddCommand(setRoleCmd)

	// Reference and transfer commands
	ClientCmd.AddCommand(previewCmd)
	ClientCmd.AddCommand(importSRDCmd)
	ClientCmd.AddCommand(exportCmd)
	ClientCmd.AddCommand(importCmd)
}

// createSpellWizardClient creates a spell wizard service client
func createSpellWizardClient() (spellwizardv1alpha1.SpellWizardServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return spellwizardv1alpha1.NewSpellWizardServiceClient(conn), cleanup, nil
}

// printJSON writes v as indented JSON
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// printAdvisories lists advisory messages, if any
func printAdvisories(advisories []string) {
	if len(advisories) == 0 {
		return
	}
	fmt.Printf("\nAdvisories:\n")
	for _, a := range advisories {
		fmt.Printf("  - %s\n", a)
	}
}
