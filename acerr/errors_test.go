package acerr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsMatchesByKind(t *testing.T) {
	err := New(KindNotFound, "group", map[string]string{"group": "g1"}, nil)
	assert.True(t, errors.Is(err, NotFound))
	assert.False(t, errors.Is(err, AlreadyExists))
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := New(KindAlreadyExists, "user", nil, cause)
	assert.Same(t, cause, errors.Unwrap(err))
}
