package errors

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts an error to a gRPC status error. Metadata travels as a
// structpb.Struct detail so clients can recover it with FromGRPCError.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !As(err, &e) {
		return status.Error(codes.Internal, err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) > 0 {
		if details, detailErr := structpb.NewStruct(protoCompatible(e.Meta)); detailErr == nil {
			if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
				st = withDetails
			}
		}
	}
	return st.Err()
}

// FromGRPCError converts a gRPC error to our custom error
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	e := &Error{Code: fromGRPCCode(st.Code()), Message: st.Message()}
	for _, detail := range st.Details() {
		if s, ok := detail.(*structpb.Struct); ok {
			e.Meta = s.AsMap()
			break
		}
	}
	return e
}

// protoCompatible rewrites metadata values structpb cannot encode into strings
func protoCompatible(meta map[string]any) map[string]any {
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		if _, err := structpb.NewValue(v); err != nil {
			out[k] = fmt.Sprint(v)
			continue
		}
		out[k] = v
	}
	return out
}
