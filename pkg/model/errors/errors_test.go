package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
)

func TestUnknownAttributeKindMatchesSentinel(t *testing.T) {
	is := is.New(t)

	err := NewUnknownAttributeKindError("blah")

	is.True(errors.Is(err, ErrUnknownAttributeKind)) // should match its sentinel
	is.True(!errors.Is(err, ErrUnknownField))        // should not match other sentinels
	is.Equal(err.Error(), "attribute kind \"blah\" is not registered")
}

func TestWrappedErrorStillMatches(t *testing.T) {
	is := is.New(t)

	err := fmt.Errorf("failed to build schema: %w", NewUnknownMutatorError("shout"))

	is.True(errors.Is(err, ErrUnknownMutator)) // should match through wrapping
}
