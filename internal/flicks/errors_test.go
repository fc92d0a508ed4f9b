package flicks

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFormatting(t *testing.T) {
	withCause := &Error{Op: "stats", Reason: ReasonRemote, Status: 502, Err: fmt.Errorf("remote error: upstream down")}
	assert.Equal(t, "flicks: stats: remote error: upstream down", withCause.Error())

	bare := &Error{Op: "genres", Reason: ReasonNetwork}
	assert.Equal(t, "flicks: genres: network", bare.Error())
}

func TestErrorUnwrap(t *testing.T) {
	err := &Error{Op: "movie by id", Reason: ReasonNotFound, Status: 404, Err: ErrNotFound}
	assert.True(t, errors.Is(err, ErrNotFound))

	// The reason survives further wrapping.
	wrapped := fmt.Errorf("load detail: %w", err)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, ReasonNotFound, ReasonOf(wrapped))
}

func TestReasonOfForeignError(t *testing.T) {
	assert.Equal(t, Reason(""), ReasonOf(errors.New("unrelated")))
	assert.Equal(t, Reason(""), ReasonOf(nil))
}
