package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
)

var previewCmd = &cobra.Command{
	Use:   "preview [formula]",
	Short: "Roll the dice part of a formula",
	Args:  cobra.ExactArgs(1),
	RunE:  preview,
}

var importSRDCmd = &cobra.Command{
	Use:   "import-srd [spell-id] [srd-key]",
	Short: "Seed a spell from an SRD spell such as fireball",
	Args:  cobra.ExactArgs(2),
	RunE:  importSRD,
}

var exportCmd = &cobra.Command{
	Use:   "export [spell-id] [file]",
	Short: "Export a spell archive to a file",
	Args:  cobra.ExactArgs(2),
	RunE:  exportSpell,
}

var importCmd = &cobra.Command{
	Use:   "import [owner-id] [file]",
	Short: "Import a spell archive from a file",
	Args:  cobra.ExactArgs(2),
	RunE:  importSpell,
}

func preview(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.PreviewFormula(ctx, &spellwizardv1alpha1.PreviewFormulaRequest{Formula: args[0]})
	if err != nil {
		return fmt.Errorf("failed to preview formula: %w", err)
	}

	fmt.Printf("%s rolled %v = %d (range %d-%d)\n", resp.Notation, resp.Dice, resp.Total, resp.Min, resp.Max)
	if resp.Remainder != "" {
		fmt.Printf("Unrolled remainder: %s\n", resp.Remainder)
	}
	return nil
}

func importSRD(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportSRDSpell(ctx, &spellwizardv1alpha1.ImportSRDSpellRequest{
		SpellID: args[0],
		SRDKey:  args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to import srd spell: %w", err)
	}

	fmt.Printf("Seeded %s from %s (level %d)\n", resp.Spell.ID, resp.SRD.Name, resp.SRD.Level)
	return printJSON(resp.Spell.Effects)
}

func exportSpell(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ExportSpell(ctx, &spellwizardv1alpha1.ExportSpellRequest{SpellID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to export spell: %w", err)
	}

	if err := os.WriteFile(args[1], resp.Archive, 0o600); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}

	fmt.Printf("Wrote %d bytes to %s\n", len(resp.Archive), args[1])
	return nil
}

func importSpell(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportSpell(ctx, &spellwizardv1alpha1.ImportSpellRequest{
		OwnerID: args[0],
		Archive: data,
	})
	if err != nil {
		return fmt.Errorf("failed to import spell: %w", err)
	}

	fmt.Printf("Imported spell %s (%s)\n", resp.Spell.ID, resp.Spell.Name)
	printAdvisories(resp.Advisories)
	return nil
}
