package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
)

var listTriggersCmd = &cobra.Command{
	Use:   "list-triggers [category]",
	Short: "List the trigger catalog",
	Args:  cobra.MaximumNArgs(1),
	RunE:  listTriggers,
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [spell-id] [manual|triggered|conditional]",
	Short: "Set how a spell is activated",
	Args:  cobra.ExactArgs(2),
	RunE:  setRole,
}

func listTriggers(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &spellwizardv1alpha1.ListTriggersRequest{}
	if len(args) == 1 {
		req.Category = args[0]
	}

	resp, err := client.ListTriggers(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list triggers: %w", err)
	}

	fmt.Printf("Found %d triggers:\n", len(resp.Triggers))
	for _, t := range resp.Triggers {
		fmt.Printf("  %-20s %-12s %s\n", t.ID, t.Category, t.Description)
	}
	return nil
}

func setRole(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.Dispatch(ctx, &spellwizardv1alpha1.DispatchRequest{
		SpellID: args[0],
		Action: spell.Action{
			Type: spell.ActionUpdateTriggerRole,
			Role: &spell.TriggerRole{Mode: spell.TriggerMode(args[1])},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to set trigger role: %w", err)
	}

	fmt.Printf("Spell %s is now %s\n", resp.Spell.ID, resp.Spell.TriggerConfig.Role.Mode)
	printAdvisories(resp.Advisories)
	return nil
}
