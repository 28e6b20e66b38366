package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, Validation, KindOf(Validationf("bad input")))
	assert.Equal(t, Auth, KindOf(Authf("no")))
	assert.Equal(t, NotFound, KindOf(NotFoundf("gone")))
	assert.Equal(t, Conflict, KindOf(Conflictf("dup")))
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
	assert.Equal(t, Internal, KindOf(nil))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", NotFoundf("gone"))
	assert.Equal(t, NotFound, KindOf(err))
	assert.Equal(t, "gone", MessageOf(err, "fallback"))
}

func TestMessageOfFallback(t *testing.T) {
	assert.Equal(t, "fallback", MessageOf(errors.New("secret detail"), "fallback"))
}

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("root")
	err := Wrap(Internal, "context", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "context")
	assert.Contains(t, err.Error(), "root")
}
