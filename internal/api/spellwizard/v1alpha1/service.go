package spellwizardv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "spellwizard.api.v1alpha1.SpellWizardService"

// SpellWizardServiceServer is the server API for the spell wizard service
type SpellWizardServiceServer interface {
	CreateSpell(context.Context, *CreateSpellRequest) (*CreateSpellResponse, error)
	GetSpell(context.Context, *GetSpellRequest) (*GetSpellResponse, error)
	ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error)
	DeleteSpell(context.Context, *DeleteSpellRequest) (*DeleteSpellResponse, error)
	UpdateEffectConfig(context.Context, *UpdateEffectConfigRequest) (*UpdateEffectConfigResponse, error)
	ValidateSpell(context.Context, *ValidateSpellRequest) (*ValidateSpellResponse, error)
	EnableConditional(context.Context, *EnableConditionalRequest) (*ConditionalResponse, error)
	ToggleConditional(context.Context, *ToggleConditionalRequest) (*ConditionalResponse, error)
	SetOverrideField(context.Context, *SetOverrideFieldRequest) (*ConditionalResponse, error)
	SetOverrideFormula(context.Context, *SetOverrideFormulaRequest) (*ConditionalResponse, error)
	ResolveEffect(context.Context, *ResolveEffectRequest) (*ResolveEffectResponse, error)
	Dispatch(context.Context, *DispatchRequest) (*DispatchResponse, error)
	ListTriggers(context.Context, *ListTriggersRequest) (*ListTriggersResponse, error)
	DescribeTriggers(context.Context, *DescribeTriggersRequest) (*DescribeTriggersResponse, error)
	ImportSRDSpell(context.Context, *ImportSRDSpellRequest) (*ImportSRDSpellResponse, error)
	PreviewFormula(context.Context, *PreviewFormulaRequest) (*PreviewFormulaResponse, error)
	ExportSpell(context.Context, *ExportSpellRequest) (*ExportSpellResponse, error)
	ImportSpell(context.Context, *ImportSpellRequest) (*ImportSpellResponse, error)
}

// UnimplementedSpellWizardServiceServer can be embedded for forward compatibility
type UnimplementedSpellWizardServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

// CreateSpell is not implemented
func (UnimplementedSpellWizardServiceServer) CreateSpell(context.Context, *CreateSpellRequest) (*CreateSpellResponse, error) {
	return nil, unimplemented("CreateSpell")
}

// GetSpell is not implemented
func (UnimplementedSpellWizardServiceServer) GetSpell(context.Context, *GetSpellRequest) (*GetSpellResponse, error) {
	return nil, unimplemented("GetSpell")
}

// ListSpells is not implemented
func (UnimplementedSpellWizardServiceServer) ListSpells(context.Context, *ListSpellsRequest) (*ListSpellsResponse, error) {
	return nil, unimplemented("ListSpells")
}

// DeleteSpell is not implemented
func (UnimplementedSpellWizardServiceServer) DeleteSpell(context.Context, *DeleteSpellRequest) (*DeleteSpellResponse, error) {
	return nil, unimplemented("DeleteSpell")
}

// UpdateEffectConfig is not implemented
func (UnimplementedSpellWizardServiceServer) UpdateEffectConfig(context.Context, *UpdateEffectConfigRequest) (*UpdateEffectConfigResponse, error) {
	return nil, unimplemented("UpdateEffectConfig")
}

// ValidateSpell is not implemented
func (UnimplementedSpellWizardServiceServer) ValidateSpell(context.Context, *ValidateSpellRequest) (*ValidateSpellResponse, error) {
	return nil, unimplemented("ValidateSpell")
}

// EnableConditional is not implemented
func (UnimplementedSpellWizardServiceServer) EnableConditional(context.Context, *EnableConditionalRequest) (*ConditionalResponse, error) {
	return nil, unimplemented("EnableConditional")
}

// ToggleConditional is not implemented
func (UnimplementedSpellWizardServiceServer) ToggleConditional(context.Context, *ToggleConditionalRequest) (*ConditionalResponse, error) {
	return nil, unimplemented("ToggleConditional")
}

// SetOverrideField is not implemented
func (UnimplementedSpellWizardServiceServer) SetOverrideField(context.Context, *SetOverrideFieldRequest) (*ConditionalResponse, error) {
	return nil, unimplemented("SetOverrideField")
}

// SetOverrideFormula is not implemented
func (UnimplementedSpellWizardServiceServer) SetOverrideFormula(context.Context, *SetOverrideFormulaRequest) (*ConditionalResponse, error) {
	return nil, unimplemented("SetOverrideFormula")
}

// ResolveEffect is not implemented
func (UnimplementedSpellWizardServiceServer) ResolveEffect(context.Context, *ResolveEffectRequest) (*ResolveEffectResponse, error) {
	return nil, unimplemented("ResolveEffect")
}

// Dispatch is not implemented
func (UnimplementedSpellWizardServiceServer) Dispatch(context.Context, *DispatchRequest) (*DispatchResponse, error) {
	return nil, unimplemented("Dispatch")
}

// ListTriggers is not implemented
func (UnimplementedSpellWizardServiceServer) ListTriggers(context.Context, *ListTriggersRequest) (*ListTriggersResponse, error) {
	return nil, unimplemented("ListTriggers")
}

// DescribeTriggers is not implemented
func (UnimplementedSpellWizardServiceServer) DescribeTriggers(context.Context, *DescribeTriggersRequest) (*DescribeTriggersResponse, error) {
	return nil, unimplemented("DescribeTriggers")
}

// ImportSRDSpell is not implemented
func (UnimplementedSpellWizardServiceServer) ImportSRDSpell(context.Context, *ImportSRDSpellRequest) (*ImportSRDSpellResponse, error) {
	return nil, unimplemented("ImportSRDSpell")
}

// PreviewFormula is not implemented
func (UnimplementedSpellWizardServiceServer) PreviewFormula(context.Context, *PreviewFormulaRequest) (*PreviewFormulaResponse, error) {
	return nil, unimplemented("PreviewFormula")
}

// ExportSpell is not implemented
func (UnimplementedSpellWizardServiceServer) ExportSpell(context.Context, *ExportSpellRequest) (*ExportSpellResponse, error) {
	return nil, unimplemented("ExportSpell")
}

// ImportSpell is not implemented
func (UnimplementedSpellWizardServiceServer) ImportSpell(context.Context, *ImportSpellRequest) (*ImportSpellResponse, error) {
	return nil, unimplemented("ImportSpell")
}

// unaryMethod adapts a typed server method to a grpc.MethodDesc
func unaryMethod[Req, Resp any](
	name string,
	call func(SpellWizardServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			server := srv.(SpellWizardServiceServer)
			if interceptor == nil {
				return call(server, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + ServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(server, ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SpellWizardServiceDesc is the grpc.ServiceDesc for the spell wizard service
var SpellWizardServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SpellWizardServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("CreateSpell", SpellWizardServiceServer.CreateSpell),
		unaryMethod("GetSpell", SpellWizardServiceServer.GetSpell),
		unaryMethod("ListSpells", SpellWizardServiceServer.ListSpells),
		unaryMethod("DeleteSpell", SpellWizardServiceServer.DeleteSpell),
		unaryMethod("UpdateEffectConfig", SpellWizardServiceServer.UpdateEffectConfig),
		unaryMethod("ValidateSpell", SpellWizardServiceServer.ValidateSpell),
		unaryMethod("EnableConditional", SpellWizardServiceServer.EnableConditional),
		unaryMethod("ToggleConditional", SpellWizardServiceServer.ToggleConditional),
		unaryMethod("SetOverrideField", SpellWizardServiceServer.SetOverrideField),
		unaryMethod("SetOverrideFormula", SpellWizardServiceServer.SetOverrideFormula),
		unaryMethod("ResolveEffect", SpellWizardServiceServer.ResolveEffect),
		unaryMethod("Dispatch", SpellWizardServiceServer.Dispatch),
		unaryMethod("ListTriggers", SpellWizardServiceServer.ListTriggers),
		unaryMethod("DescribeTriggers", SpellWizardServiceServer.DescribeTriggers),
		unaryMethod("ImportSRDSpell", SpellWizardServiceServer.ImportSRDSpell),
		unaryMethod("PreviewFormula", SpellWizardServiceServer.PreviewFormula),
		unaryMethod("ExportSpell", SpellWizardServiceServer.ExportSpell),
		unaryMethod("ImportSpell", SpellWizardServiceServer.ImportSpell),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "spellwizard/api/v1alpha1/spellwizard.json",
}

// RegisterSpellWizardServiceServer registers srv with the gRPC server
func RegisterSpellWizardServiceServer(s grpc.ServiceRegistrar, srv SpellWizardServiceServer) {
	s.RegisterService(&SpellWizardServiceDesc, srv)
}
