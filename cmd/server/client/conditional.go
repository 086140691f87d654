package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
)

var enableConditionalCmd = &cobra.Command{
	Use:   "enable-conditional [spell-id] [effect-type]",
	Short: "Turn on trigger-scoped overrides for an effect",
	Args:  cobra.ExactArgs(2),
	RunE:  enableConditional,
}

var setFormulaCmd = &cobra.Command{
	Use:   "set-formula [spell-id] [effect-type] [trigger-id] [formula]",
	Short: "Set the formula an effect uses when a trigger fires",
	Long: `Set a trigger's override formula. Use "default" for triggers without their own override. Example:

  set-formula spell_123 damage critical_hit "3d6 + INT*2"`,
	Args: cobra.ExactArgs(4),
	RunE: setFormula,
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [spell-id] [effect-type] [trigger-id]",
	Short: "Show the configuration applied when a trigger fires",
	Args:  cobra.ExactArgs(3),
	RunE:  resolve,
}

func enableConditional(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.EnableConditional(ctx, &spellwizardv1alpha1.EnableConditionalRequest{
		SpellID:    args[0],
		EffectType: args[1],
	})
	if err != nil {
		return fmt.Errorf("failed to enable conditional effect: %w", err)
	}

	return printJSON(resp.Config)
}

func setFormula(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.SetOverrideFormula(ctx, &spellwizardv1alpha1.SetOverrideFormulaRequest{
		SpellID:    args[0],
		EffectType: args[1],
		TriggerID:  args[2],
		Formula:    args[3],
	})
	if err != nil {
		return fmt.Errorf("failed to set override formula: %w", err)
	}

	return printJSON(resp.Config.Overrides)
}

func resolve(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createSpellWizardClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ResolveEffect(ctx, &spellwizardv1alpha1.ResolveEffectRequest{
		SpellID:    args[0],
		EffectType: args[1],
		TriggerID:  args[2],
	})
	if err != nil {
		return fmt.Errorf("failed to resolve effect: %w", err)
	}

	fmt.Printf("Source: %s\n", resp.Source)
	return printJSON(resp.Settings)
}
