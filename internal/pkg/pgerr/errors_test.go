package pgerr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	assert.NotEqual(t, "changed", e.Message, "expected the original error to keep its message")
	assert.Equal(t, "changed", changedE.Message)

	withExtras := ErrInvalidSelection.WithExtras(Extras{"reason": "absent"})
	assert.Nil(t, ErrInvalidSelection.Extras)
	assert.Equal(t, "absent", (*withExtras.Extras)["reason"])
}

func TestNewInvalidViolations(t *testing.T) {
	e := NewInvalidViolations([]string{"top must be 1000 or less"})
	assert.Equal(t, 400, e.StatusCode)
	assert.Equal(t, CodeInvalidRequest, e.ErrorCode)
	assert.Nil(t, ErrInvalidReq.Extras)
	assert.Equal(t, "INVALID_REQUEST: invalid request: some or all request parameters are invalid", e.Error())
}
