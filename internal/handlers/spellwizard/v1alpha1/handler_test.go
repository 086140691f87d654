package v1alpha1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/clients/external"
	"github.com/KirkDiggler/rpg-spellwizard/internal/dice"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
	"github.com/KirkDiggler/rpg-spellwizard/internal/handlers/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard"
	spellwizardmock "github.com/KirkDiggler/rpg-spellwizard/internal/orchestrators/spellwizard/mock"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *spellwizardmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = spellwizardmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SpellWizardService: s.mockService,
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateSpell() {
	created := testutils.NewTestSpell("spell_1", "player_1")
	s.mockService.EXPECT().
		CreateSpell(s.ctx, &spellwizard.CreateSpellInput{
			OwnerID:     "player_1",
			Name:        testutils.TestSpellName,
			EffectTypes: []string{"damage"},
		}).
		Return(&spellwizard.CreateSpellOutput{Spell: created, Advisories: []string{}}, nil)

	resp, err := s.handler.CreateSpell(s.ctx, &spellwizardv1alpha1.CreateSpellRequest{
		OwnerID:     "player_1",
		Name:        testutils.TestSpellName,
		EffectTypes: []string{"damage"},
	})
	s.Require().NoError(err)
	s.Equal(created, resp.Spell)
}

func (s *HandlerTestSuite) TestGetSpellMapsNotFound() {
	s.mockService.EXPECT().
		GetSpell(s.ctx, &spellwizard.GetSpellInput{SpellID: "spell_9"}).
		Return(nil, errors.NotFound("spell with ID spell_9 not found"))

	_, err := s.handler.GetSpell(s.ctx, &spellwizardv1alpha1.GetSpellRequest{SpellID: "spell_9"})
	s.Equal(codes.NotFound, status.Code(err))
}

func (s *HandlerTestSuite) TestRequiredFields() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "get spell", call: func() error {
			_, err := s.handler.GetSpell(s.ctx, &spellwizardv1alpha1.GetSpellRequest{})
			return err
		}},
		{name: "list spells", call: func() error {
			_, err := s.handler.ListSpells(s.ctx, &spellwizardv1alpha1.ListSpellsRequest{})
			return err
		}},
		{name: "delete spell", call: func() error {
			_, err := s.handler.DeleteSpell(s.ctx, &spellwizardv1alpha1.DeleteSpellRequest{})
			return err
		}},
		{name: "dispatch", call: func() error {
			_, err := s.handler.Dispatch(s.ctx, &spellwizardv1alpha1.DispatchRequest{SpellID: "spell_1"})
			return err
		}},
		{name: "import srd", call: func() error {
			_, err := s.handler.ImportSRDSpell(s.ctx, &spellwizardv1alpha1.ImportSRDSpellRequest{SpellID: "spell_1"})
			return err
		}},
		{name: "preview", call: func() error {
			_, err := s.handler.PreviewFormula(s.ctx, &spellwizardv1alpha1.PreviewFormulaRequest{})
			return err
		}},
		{name: "import archive", call: func() error {
			_, err := s.handler.ImportSpell(s.ctx, &spellwizardv1alpha1.ImportSpellRequest{OwnerID: "player_1"})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(codes.InvalidArgument, status.Code(tc.call()))
		})
	}
}

func (s *HandlerTestSuite) TestSetOverrideFieldFailedPreconditionCarriesMeta() {
	s.mockService.EXPECT().
		SetOverrideField(s.ctx, &spellwizard.SetOverrideFieldInput{
			SpellID: "spell_1", EffectType: "healing", TriggerID: "critical_hit", Field: "formula", Value: "2d8",
		}).
		Return(nil, errors.FailedPreconditionf("effect type healing is not selected on spell spell_1").
			WithMeta("effect_type", "healing"))

	_, err := s.handler.SetOverrideField(s.ctx, &spellwizardv1alpha1.SetOverrideFieldRequest{
		SpellID: "spell_1", EffectType: "healing", TriggerID: "critical_hit", Field: "formula", Value: "2d8",
	})
	s.Equal(codes.FailedPrecondition, status.Code(err))

	back := errors.FromGRPCError(err)
	s.True(errors.IsFailedPrecondition(back))
	s.Equal("healing", errors.GetMeta(back)["effect_type"])
}

func (s *HandlerTestSuite) TestResolveEffect() {
	s.mockService.EXPECT().
		ResolveEffect(s.ctx, &spellwizard.ResolveEffectInput{SpellID: "spell_1", EffectType: "damage", TriggerID: "critical_hit"}).
		Return(&spellwizard.ResolveEffectOutput{
			Settings: spell.Settings{spell.FieldFormula: "3d6 + INT*2"},
			Source:   spellwizard.ResolveSourceOverride,
		}, nil)

	resp, err := s.handler.ResolveEffect(s.ctx, &spellwizardv1alpha1.ResolveEffectRequest{
		SpellID: "spell_1", EffectType: "damage", TriggerID: "critical_hit",
	})
	s.Require().NoError(err)
	s.Equal("override", resp.Source)
	s.Equal("3d6 + INT*2", resp.Settings[spell.FieldFormula])
}

func (s *HandlerTestSuite) TestDispatch() {
	action := spell.Action{
		Type: spell.ActionUpdateTriggerRole,
		Role: &spell.TriggerRole{Mode: spell.TriggerModeTriggered},
	}
	s.mockService.EXPECT().
		Dispatch(s.ctx, &spellwizard.DispatchInput{SpellID: "spell_1", Action: action}).
		Return(&spellwizard.DispatchOutput{
			Spell:      testutils.NewTestSpell("spell_1", "player_1"),
			Advisories: []string{spellwizard.AdvisoryNoGlobalTrigger},
		}, nil)

	resp, err := s.handler.Dispatch(s.ctx, &spellwizardv1alpha1.DispatchRequest{SpellID: "spell_1", Action: action})
	s.Require().NoError(err)
	s.Equal([]string{spellwizard.AdvisoryNoGlobalTrigger}, resp.Advisories)
}

func (s *HandlerTestSuite) TestImportSRDSpell() {
	s.mockService.EXPECT().
		ImportSRDSpell(s.ctx, &spellwizard.ImportSRDSpellInput{SpellID: "spell_1", SRDKey: "fireball"}).
		Return(&spellwizard.ImportSRDSpellOutput{
			Spell: testutils.NewTestSpell("spell_1", "player_1"),
			SRD:   &external.SRDSpell{Key: "fireball", Name: "Fireball", Level: 3, DamageDice: "8d6", DamageType: "fire"},
		}, nil)

	resp, err := s.handler.ImportSRDSpell(s.ctx, &spellwizardv1alpha1.ImportSRDSpellRequest{SpellID: "spell_1", SRDKey: "fireball"})
	s.Require().NoError(err)
	s.Equal("Fireball", resp.SRD.Name)
	s.Equal("8d6", resp.SRD.DamageDice)
	s.Equal(3, resp.SRD.Level)
}

func (s *HandlerTestSuite) TestPreviewFormula() {
	s.mockService.EXPECT().
		PreviewFormula(s.ctx, &spellwizard.PreviewFormulaInput{Formula: "2d6 + INT"}).
		Return(&spellwizard.PreviewFormulaOutput{Preview: &dice.Preview{
			Notation: "2d6", Count: 2, Size: 6, Total: 7, Dice: []int{3, 4},
			Description: "+2d6[3,4]=7", Remainder: "+ INT", Min: 2, Max: 12,
		}}, nil)

	resp, err := s.handler.PreviewFormula(s.ctx, &spellwizardv1alpha1.PreviewFormulaRequest{Formula: "2d6 + INT"})
	s.Require().NoError(err)
	s.Equal(7, resp.Total)
	s.Equal([]int{3, 4}, resp.Dice)
	s.Equal("+ INT", resp.Remainder)
}

func (s *HandlerTestSuite) TestExportImport() {
	s.mockService.EXPECT().
		ExportSpell(s.ctx, &spellwizard.ExportSpellInput{SpellID: "spell_1"}).
		Return(&spellwizard.ExportSpellOutput{Archive: []byte("archive")}, nil)
	s.mockService.EXPECT().
		ImportSpell(s.ctx, &spellwizard.ImportSpellInput{OwnerID: "player_2", Archive: []byte("archive")}).
		Return(nil, errors.InvalidArgument("archive is corrupt"))

	exported, err := s.handler.ExportSpell(s.ctx, &spellwizardv1alpha1.ExportSpellRequest{SpellID: "spell_1"})
	s.Require().NoError(err)

	_, err = s.handler.ImportSpell(s.ctx, &spellwizardv1alpha1.ImportSpellRequest{OwnerID: "player_2", Archive: exported.Archive})
	s.Equal(codes.InvalidArgument, status.Code(err))
}
