// SPDX-License-Identifier: GPL-3.0-or-later

package debugchain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispositionContinue(t *testing.T) {
	assert.True(t, Continue.IsContinue())
	assert.False(t, Continue.IsStop())
	assert.False(t, Continue.IsErr())
	assert.NoError(t, Continue.AsError())
}

func TestDispositionStop(t *testing.T) {
	assert.False(t, Stop.IsContinue())
	assert.True(t, Stop.IsStop())
	assert.False(t, Stop.IsErr())
	assert.Equal(t, CodeStopChain, Stop.Code())
}

func TestDispositionErr(t *testing.T) {
	d := Err(CodeNotFound)
	assert.False(t, d.IsContinue())
	assert.False(t, d.IsStop())
	assert.True(t, d.IsErr())
	assert.True(t, errors.Is(d.AsError(), CodeNotFound))
}

func TestCodeErrorStrings(t *testing.T) {
	cases := map[Code]string{
		CodeSuccess:       "success",
		CodeInvalidParam:  "invalid param",
		CodeNotFound:      "not found",
		CodeAlreadyExists: "already exists",
		CodeStopChain:     "stop chain",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.Error())
	}
}
