package history

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesKind(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("run: %w", &Error{Kind: KindFetch, Op: "get", Err: cause})

	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrParse)
	assert.NotErrorIs(t, err, ErrIO)
	assert.Equal(t, KindFetch, KindOf(err))
	assert.Equal(t, "fetch: get: connection refused", errors.Unwrap(err).Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, "kind(0)", Kind(0).String())
}

func TestUserIDString(t *testing.T) {
	assert.Equal(t, "0", UserID(0).String())
	assert.Equal(t, "18446744073709551615", UserID(^uint64(0)).String())
}
