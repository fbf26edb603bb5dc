package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errDepositMissing = New("deposit not found")

func TestWrap_KeepsSentinel(t *testing.T) {
	wrapped := Wrapf(Wrap(errDepositMissing, "load deposit"), "approve deposit %d", 7)

	assert.True(t, Is(wrapped, errDepositMissing))
	assert.Equal(t, "approve deposit 7: load deposit: deposit not found", wrapped.Error())
	assert.Contains(t, fmt.Sprintf("%+v", wrapped), "TestWrap_KeepsSentinel")
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
}
