package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-spellwizard/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	base := errors.NotFoundf("spell %s not found", "spell_1")
	wrapped := errors.Wrap(base, "failed to load spell")

	s.Equal(errors.CodeNotFound, wrapped.Code)
	s.True(errors.IsNotFound(wrapped))
	s.Equal("failed to load spell", errors.GetMessage(wrapped))
	s.ErrorIs(wrapped, base)
}

func (s *ErrorsTestSuite) TestWrapPlainErrorIsInternal() {
	wrapped := errors.Wrap(stderrors.New("boom"), "redis failed")

	s.True(errors.IsInternal(wrapped))
	s.Contains(wrapped.Error(), "boom")
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Nil(errors.Wrap(nil, "nothing"))
	s.Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestWrapWithCodeCopiesMeta() {
	base := errors.NotFound("missing").WithMeta("spell_id", "spell_1")
	wrapped := errors.WrapWithCode(base, errors.CodeFailedPrecondition, "cannot toggle")

	s.True(errors.IsFailedPrecondition(wrapped))
	s.Equal("spell_1", errors.GetMeta(wrapped)["spell_id"])
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Equal(errors.CodeOK, errors.GetCode(nil))
	s.Equal(errors.CodeInternal, errors.GetCode(stderrors.New("plain")))
	s.Equal(errors.CodeAlreadyExists, errors.GetCode(errors.AlreadyExistsf("spell %s", "x")))
}

func (s *ErrorsTestSuite) TestValidationBuilder() {
	s.Run("no errors", func() {
		s.NoError(errors.NewValidationBuilder().Build())
	})

	s.Run("collects fields", func() {
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", "  ", vb)
		errors.ValidateEnum("perspective", "enemy", []string{"self", "target", "ally"}, vb)
		err := vb.Build()

		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "name: is required")
		s.Contains(err.Error(), "perspective: must be one of: self, target, ally")
	})
}

func (s *ErrorsTestSuite) TestGRPCRoundTrip() {
	err := errors.InvalidArgument("effect type is required").WithMeta("spell_id", "spell_1")

	grpcErr := errors.ToGRPCError(err)
	st, ok := status.FromError(grpcErr)
	s.Require().True(ok)
	s.Equal(codes.InvalidArgument, st.Code())
	s.Equal("effect type is required", st.Message())

	back := errors.FromGRPCError(grpcErr)
	s.True(errors.IsInvalidArgument(back))
	s.Equal("spell_1", errors.GetMeta(back)["spell_id"])
}

func (s *ErrorsTestSuite) TestToGRPCErrorPlainError() {
	st, ok := status.FromError(errors.ToGRPCError(stderrors.New("boom")))
	s.Require().True(ok)
	s.Equal(codes.Internal, st.Code())
}

func (s *ErrorsTestSuite) TestToGRPCErrorPassesStatusThrough() {
	in := status.Error(codes.Unavailable, "down")
	s.Equal(in, errors.ToGRPCError(in))
	s.True(errors.IsUnavailable(errors.FromGRPCError(in)))
}
