package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lapak/internal/errors"
)

func TestBaseError_Is_MatchesDerivedError(t *testing.T) {
	derived := ErrStepLocked.WithDetails("langkah 2 belum terbuka")

	assert.ErrorIs(t, derived, ErrStepLocked)
	assert.NotSame(t, ErrStepLocked, derived)
	assert.Equal(t, "langkah 2 belum terbuka", derived.Details())
}

func TestBaseError_Is_MatchesThroughWrap(t *testing.T) {
	wrapped := ErrUserNotFound.WithDetails("id tidak dikenal").WrapMessage("find by email")

	assert.ErrorIs(t, wrapped, ErrUserNotFound)
}

func TestBaseError_Is_RejectsDifferentCode(t *testing.T) {
	assert.NotErrorIs(t, ErrStepLocked.WithDetails("x"), ErrUserNotFound)
	assert.NotErrorIs(t, ErrStepLocked, errors.New("step locked"))
}
