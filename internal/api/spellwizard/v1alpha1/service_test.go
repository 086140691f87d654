package spellwizardv1alpha1_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	spellwizardv1alpha1 "github.com/KirkDiggler/rpg-spellwizard/internal/api/spellwizard/v1alpha1"
	"github.com/KirkDiggler/rpg-spellwizard/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellwizard/internal/testutils"
)

// fakeServer answers GetSpell and Dispatch and leaves the rest unimplemented
type fakeServer struct {
	spellwizardv1alpha1.UnimplementedSpellWizardServiceServer
	lastDispatch *spellwizardv1alpha1.DispatchRequest
}

func (f *fakeServer) GetSpell(_ context.Context, req *spellwizardv1alpha1.GetSpellRequest) (*spellwizardv1alpha1.GetSpellResponse, error) {
	return &spellwizardv1alpha1.GetSpellResponse{
		Spell:      testutils.NewTestSpell(req.SpellID, "player_1"),
		Advisories: []string{},
	}, nil
}

func (f *fakeServer) Dispatch(_ context.Context, req *spellwizardv1alpha1.DispatchRequest) (*spellwizardv1alpha1.DispatchResponse, error) {
	f.lastDispatch = req
	return &spellwizardv1alpha1.DispatchResponse{Advisories: []string{"ok"}}, nil
}

type ServiceTestSuite struct {
	suite.Suite
	server *fakeServer
	client spellwizardv1alpha1.SpellWizardServiceClient
	ctx    context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = &fakeServer{}

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	spellwizardv1alpha1.RegisterSpellWizardServiceServer(srv, s.server)
	go func() {
		_ = srv.Serve(lis)
	}()
	s.T().Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = conn.Close() })

	s.client = spellwizardv1alpha1.NewSpellWizardServiceClient(conn)
}

func (s *ServiceTestSuite) TestRoundTripsSpellOverJSON() {
	resp, err := s.client.GetSpell(s.ctx, &spellwizardv1alpha1.GetSpellRequest{SpellID: "spell_1"})
	s.Require().NoError(err)

	s.Equal("spell_1", resp.Spell.ID)
	s.Equal(testutils.NewTestSpell("spell_1", "player_1"), resp.Spell)
	s.Empty(resp.Advisories)
}

func (s *ServiceTestSuite) TestDispatchCarriesAction() {
	_, err := s.client.Dispatch(s.ctx, &spellwizardv1alpha1.DispatchRequest{
		SpellID: "spell_1",
		Action: spell.Action{
			Type: spell.ActionUpdateTriggerRole,
			Role: &spell.TriggerRole{Mode: spell.TriggerModeConditional},
		},
	})
	s.Require().NoError(err)

	s.Require().NotNil(s.server.lastDispatch)
	s.Equal(spell.ActionUpdateTriggerRole, s.server.lastDispatch.Action.Type)
	s.Equal(spell.TriggerModeConditional, s.server.lastDispatch.Action.Role.Mode)
}

func (s *ServiceTestSuite) TestUnimplementedMethod() {
	_, err := s.client.ListSpells(s.ctx, &spellwizardv1alpha1.ListSpellsRequest{OwnerID: "player_1"})
	s.Equal(codes.Unimplemented, status.Code(err))
}

func (s *ServiceTestSuite) TestCodecName() {
	s.Equal("json", spellwizardv1alpha1.Codec{}.Name())
}
