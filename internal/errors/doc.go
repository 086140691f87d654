// Package errors provides the structured errors used across the spell wizard service.
//
// Errors carry a Code, a user facing Message, an optional Cause and metadata:
//
//	err := errors.NotFoundf("spell %s not found", id).WithMeta("spell_id", id)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return nil, errors.Wrap(err, "failed to load spell")
//	}
//
// Repositories return NotFound / InvalidArgument / Internal, orchestrators validate
// input and wrap repository errors, and handlers convert to gRPC with ToGRPCError.
package errors
