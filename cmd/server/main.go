// Package main is the entry point for the spell wizard gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-spellwizard/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "spellwizard",
	Short: "Spell Wizard gRPC Server",
	Long:  `Spell Wizard provides a gRPC interface for authoring spells with trigger-scoped conditional effects.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
