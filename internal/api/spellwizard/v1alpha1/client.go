package spellwizardv1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// SpellWizardServiceClient is the client API for the spell wizard service
type SpellWizardServiceClient interface {
	CreateSpell(ctx context.Context, in *CreateSpellRequest, opts ...grpc.CallOption) (*CreateSpellResponse, error)
	GetSpell(ctx context.Context, in *GetSpellRequest, opts ...grpc.CallOption) (*GetSpellResponse, error)
	ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error)
	DeleteSpell(ctx context.Context, in *DeleteSpellRequest, opts ...grpc.CallOption) (*DeleteSpellResponse, error)
	UpdateEffectConfig(ctx context.Context, in *UpdateEffectConfigRequest, opts ...grpc.CallOption) (*UpdateEffectConfigResponse, error)
	ValidateSpell(ctx context.Context, in *ValidateSpellRequest, opts ...grpc.CallOption) (*ValidateSpellResponse, error)
	EnableConditional(ctx context.Context, in *EnableConditionalRequest, opts ...grpc.CallOption) (*ConditionalResponse, error)
	ToggleConditional(ctx context.Context, in *ToggleConditionalRequest, opts ...grpc.CallOption) (*ConditionalResponse, error)
	SetOverrideField(ctx context.Context, in *SetOverrideFieldRequest, opts ...grpc.CallOption) (*ConditionalResponse, error)
	SetOverrideFormula(ctx context.Context, in *SetOverrideFormulaRequest, opts ...grpc.CallOption) (*ConditionalResponse, error)
	ResolveEffect(ctx context.Context, in *ResolveEffectRequest, opts ...grpc.CallOption) (*ResolveEffectResponse, error)
	Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*DispatchResponse, error)
	ListTriggers(ctx context.Context, in *ListTriggersRequest, opts ...grpc.CallOption) (*ListTriggersResponse, error)
	DescribeTriggers(ctx context.Context, in *DescribeTriggersRequest, opts ...grpc.CallOption) (*DescribeTriggersResponse, error)
	ImportSRDSpell(ctx context.Context, in *ImportSRDSpellRequest, opts ...grpc.CallOption) (*ImportSRDSpellResponse, error)
	PreviewFormula(ctx context.Context, in *PreviewFormulaRequest, opts ...grpc.CallOption) (*PreviewFormulaResponse, error)
	ExportSpell(ctx context.Context, in *ExportSpellRequest, opts ...grpc.CallOption) (*ExportSpellResponse, error)
	ImportSpell(ctx context.Context, in *ImportSpellRequest, opts ...grpc.CallOption) (*ImportSpellResponse, error)
}

type spellWizardServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSpellWizardServiceClient creates a client that speaks the JSON codec over cc
func NewSpellWizardServiceClient(cc grpc.ClientConnInterface) SpellWizardServiceClient {
	return &spellWizardServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *spellWizardServiceClient) CreateSpell(ctx context.Context, in *CreateSpellRequest, opts ...grpc.CallOption) (*CreateSpellResponse, error) {
	return invoke[CreateSpellResponse](ctx, c.cc, "CreateSpell", in, opts)
}

func (c *spellWizardServiceClient) GetSpell(ctx context.Context, in *GetSpellRequest, opts ...grpc.CallOption) (*GetSpellResponse, error) {
	return invoke[GetSpellResponse](ctx, c.cc, "GetSpell", in, opts)
}

func (c *spellWizardServiceClient) ListSpells(ctx context.Context, in *ListSpellsRequest, opts ...grpc.CallOption) (*ListSpellsResponse, error) {
	return invoke[ListSpellsResponse](ctx, c.cc, "ListSpells", in, opts)
}

func (c *spellWizardServiceClient) DeleteSpell(ctx context.Context, in *DeleteSpellRequest, opts ...grpc.CallOption) (*DeleteSpellResponse, error) {
	return invoke[DeleteSpellResponse](ctx, c.cc, "DeleteSpell", in, opts)
}

func (c *spellWizardServiceClient) UpdateEffectConfig(ctx context.Context, in *UpdateEffectConfigRequest, opts ...grpc.CallOption) (*UpdateEffectConfigResponse, error) {
	return invoke[UpdateEffectConfigResponse](ctx, c.cc, "UpdateEffectConfig", in, opts)
}

func (c *spellWizardServiceClient) ValidateSpell(ctx context.Context, in *ValidateSpellRequest, opts ...grpc.CallOption) (*ValidateSpellResponse, error) {
	return invoke[ValidateSpellResponse](ctx, c.cc, "ValidateSpell", in, opts)
}

func (c *spellWizardServiceClient) EnableConditional(ctx context.Context, in *EnableConditionalRequest, opts ...grpc.CallOption) (*ConditionalResponse, error) {
	return invoke[ConditionalResponse](ctx, c.cc, "EnableConditional", in, opts)
}

func (c *spellWizardServiceClient) ToggleConditional(ctx context.Context, in *ToggleConditionalRequest, opts ...grpc.CallOption) (*ConditionalResponse, error) {
	return invoke[ConditionalResponse](ctx, c.cc, "ToggleConditional", in, opts)
}

func (c *spellWizardServiceClient) SetOverrideField(ctx context.Context, in *SetOverrideFieldRequest, opts ...grpc.CallOption) (*ConditionalResponse, error) {
	return invoke[ConditionalResponse](ctx, c.cc, "SetOverrideField", in, opts)
}

func (c *spellWizardServiceClient) SetOverrideFormula(ctx context.Context, in *SetOverrideFormulaRequest, opts ...grpc.CallOption) (*ConditionalResponse, error) {
	return invoke[ConditionalResponse](ctx, c.cc, "SetOverrideFormula", in, opts)
}

func (c *spellWizardServiceClient) ResolveEffect(ctx context.Context, in *ResolveEffectRequest, opts ...grpc.CallOption) (*ResolveEffectResponse, error) {
	return invoke[ResolveEffectResponse](ctx, c.cc, "ResolveEffect", in, opts)
}

func (c *spellWizardServiceClient) Dispatch(ctx context.Context, in *DispatchRequest, opts ...grpc.CallOption) (*DispatchResponse, error) {
	return invoke[DispatchResponse](ctx, c.cc, "Dispatch", in, opts)
}

func (c *spellWizardServiceClient) ListTriggers(ctx context.Context, in *ListTriggersRequest, opts ...grpc.CallOption) (*ListTriggersResponse, error) {
	return invoke[ListTriggersResponse](ctx, c.cc, "ListTriggers", in, opts)
}

func (c *spellWizardServiceClient) DescribeTriggers(ctx context.Context, in *DescribeTriggersRequest, opts ...grpc.CallOption) (*DescribeTriggersResponse, error) {
	return invoke[DescribeTriggersResponse](ctx, c.cc, "DescribeTriggers", in, opts)
}

func (c *spellWizardServiceClient) ImportSRDSpell(ctx context.Context, in *ImportSRDSpellRequest, opts ...grpc.CallOption) (*ImportSRDSpellResponse, error) {
	return invoke[ImportSRDSpellResponse](ctx, c.cc, "ImportSRDSpell", in, opts)
}

func (c *spellWizardServiceClient) PreviewFormula(ctx context.Context, in *PreviewFormulaRequest, opts ...grpc.CallOption) (*PreviewFormulaResponse, error) {
	return invoke[PreviewFormulaResponse](ctx, c.cc, "PreviewFormula", in, opts)
}

func (c *spellWizardServiceClient) ExportSpell(ctx context.Context, in *ExportSpellRequest, opts ...grpc.CallOption) (*ExportSpellResponse, error) {
	return invoke[ExportSpellResponse](ctx, c.cc, "ExportSpell", in, opts)
}

func (c *spellWizardServiceClient) ImportSpell(ctx context.Context, in *ImportSpellRequest, opts ...grpc.CallOption) (*ImportSpellResponse, error) {
	return invoke[ImportSpellResponse](ctx, c.cc, "ImportSpell", in, opts)
}
