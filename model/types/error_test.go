package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	sentinel := NewError(KindFormat, "history blob has wrong magic/version")
	var testCases = []struct {
		description string
		err         error
		expect      Kind
	}{
		{description: "nil", err: nil, expect: KindUnknown},
		{description: "plain error", err: errors.New("boom"), expect: KindUnknown},
		{description: "typed", err: sentinel, expect: KindFormat},
		{description: "wrapped with fmt", err: fmt.Errorf("load: %w", sentinel), expect: KindFormat},
		{description: "wrap error", err: WrapError(KindIO, "could not read history file", errors.New("eof")), expect: KindIO},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, KindOf(testCase.err), testCase.description)
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "count too large", NewError(KindValidation, "count too large").Error())
	assert.Equal(t, "rename failed: denied", WrapError(KindIO, "rename failed", errors.New("denied")).Error())
	assert.Equal(t, "not enough unused names remaining (0 left)", Errorf(KindExhausted, "not enough unused names remaining (%d left)", 0).Error())
	assert.Nil(t, WrapError(KindIO, "x", nil))
}

func TestError_Is(t *testing.T) {
	sentinel := NewError(KindConflict, "precondition failed")
	err := fmt.Errorf("write: %w", sentinel)
	assert.True(t, errors.Is(err, sentinel))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindIO))
	assert.Equal(t, "retry_exhausted", KindRetryExhausted.String())
}
