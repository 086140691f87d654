package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
)

var (
	spellDescription string
	spellEffects     []string
)

var createSpellCmd = &cobra.Command{
	Use:   "create-spell [owner-id] [name]",
	Short: "Create a new spell",
	Long: `Create a spell with kind defaults for each effect type. Example:

  create-spell player_1 "Ember Lance" --effect damage --effect control`,
	Args: cobra.ExactArgs(2),
	RunE: createSpell,
}

var getSpellCmd = &cobra.Command{
	Use:   "get-spell [spell-id]",
	Short: "Get a spell",
	Args:  cobra.ExactArgs(1),
	RunE:  getSpell,
}

var listSpellsCmd = &cobra.Command{
	Use:   "list-spells [owner-id]",
	Short: "List an owner's spells",
	Args:  cobra.ExactArgs(1),
	RunE:  listSpells,
}

var deleteSpellCmd = &cobra.Command{
	Use:   "delete-spell [spell-id]",
	Short: "Delete a spell",
	Args:  cobra.ExactArgs(1),
	RunE:  deleteSpell,
}

func init() {
	createSpellCmd.Flags().StringVar(&spellDescription, "description", "", "Spell description")
	createSpellCmd.Flags().StringArrayVar(&spellEffects, "effect", nil, "Effect type to select (repeatable)")
}

func createSpell(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateSpell(ctx, &spellwizardv1alpha1.CreateSpellRequest{
		OwnerID:     args[0],
		Name:        args[1],
		Description: spellDescription,
		EffectTypes: spellEffects,
	})
	if err != nil {
		return fmt.Errorf("failed to create spell: %w", err)
	}

	fmt.Printf("Created spell %s\n", resp.Spell.ID)
	printAdvisories(resp.Advisories)
	return nil
}

func getSpell(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetSpell(ctx, &spellwizardv1alpha1.GetSpellRequest{SpellID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to get spell: %w", err)
	}

	if err := printJSON(resp.Spell); err != nil {
		return err
	}
	printAdvisories(resp.Advisories)
	return nil
}

func listSpells(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListSpells(ctx, &spellwizardv1alpha1.ListSpellsRequest{OwnerID: args[0]})
	if err != nil {
		return fmt.Errorf("failed to list spells: %w", err)
	}

	fmt.Printf("Found %d spells:\n", len(resp.Spells))
	for _, s := range resp.Spells {
		fmt.Printf("  %s  %-24s %v\n", s.ID, s.Name, s.EffectTypes)
	}
	return nil
}

func deleteSpell(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteSpell(ctx, &spellwizardv1alpha1.DeleteSpellRequest{SpellID: args[0]}); err != nil {
		return fmt.Errorf("failed to delete spell: %w", err)
	}

	fmt.Printf("Deleted spell %s\n", args[0])
	return nil
}
