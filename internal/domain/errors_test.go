package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mds-studio/mds-backend/internal/domain"
)

func TestError_UnwrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("repo.ServiceRepo.Create: %w", domain.ErrDuplicate)
	err := domain.Conflict("Object already exists.", cause)

	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.NotErrorIs(t, err, domain.ErrUnavailable)
	assert.Equal(t, domain.KindConflict, domain.KindOf(err))
}

func TestKindOf_WrappedDomainError(t *testing.T) {
	err := fmt.Errorf("outer: %w", domain.NotFound("Service with id: 7 not found", nil))

	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestKindOf_PlainErrorIsInternal(t *testing.T) {
	assert.Equal(t, domain.KindInternal, domain.KindOf(errors.New("boom")))
}

func TestError_StringIncludesCause(t *testing.T) {
	err := domain.Internal("Internal database error", errors.New("dial tcp: refused"))

	assert.Equal(t, "internal: Internal database error: dial tcp: refused", err.Error())
	assert.Equal(t, "Internal database error", err.Message)
}
