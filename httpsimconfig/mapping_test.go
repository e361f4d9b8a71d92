// SPDX-License-Identifier: GPL-3.0-or-later

package httpsimconfig

import (
	"testing"

	"github.com/bassosimone/httpsim/callback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBuildDebugConfigsMapsActionsPerPort(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &cfg))

	configs := BuildDebugConfigs(&cfg)

	require := assert.New(t)
	require.Len(configs, 1)

	dcfg := configs[8443]
	require.True(dcfg.Enabled)
	require.EqualValues(250, dcfg.DelayMS)
	require.EqualValues(500, dcfg.HTTPStatus)
	require.Equal(50, dcfg.Probability)
}

func TestBuildDebugConfigsExplicitZeroProbabilityNeverRuns(t *testing.T) {
	zero := 0
	cfg := Config{
		Debug: Debug{
			Enabled: true,
			DebugPoints: []DebugPoint{
				{ServerPort: 1, Action: ActionLog, Probability: &zero},
			},
		},
	}

	configs := BuildDebugConfigs(&cfg)

	assert.Equal(t, 0, configs[1].Probability, "explicit probability: 0 must map through as \"never run\", not the inherited default")
}

func TestBuildDebugConfigsUnsetProbabilityKeepsDefault(t *testing.T) {
	cfg := Config{
		Debug: Debug{
			Enabled: true,
			DebugPoints: []DebugPoint{
				{ServerPort: 1, Action: ActionLog},
			},
		},
	}

	configs := BuildDebugConfigs(&cfg)

	assert.Equal(t, 100, configs[1].Probability, "an absent probability key must keep NewDebugConfig's default of 100")
}

func TestBuildDebugConfigsDisabledMasterGate(t *testing.T) {
	cfg := Config{
		Debug: Debug{
			Enabled: false,
			DebugPoints: []DebugPoint{
				{ServerPort: 1, Action: ActionDisconnect},
			},
		},
	}

	configs := BuildDebugConfigs(&cfg)

	assert.False(t, configs[1].Enabled)
	assert.True(t, configs[1].ForceDisconnect)
}

func TestBuildDebugConfigsNoPoints(t *testing.T) {
	cfg := Config{}
	configs := BuildDebugConfigs(&cfg)
	assert.Empty(t, configs)
}

func TestApplyCallbacksRegistersDirAndPorts(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(sampleYAML), &cfg))

	mgr := callback.NewManager()
	ApplyCallbacks(&cfg, mgr)

	assert.Equal(t, "/etc/httpsim/callbacks", mgr.GetCallbacksDir())
	assert.Equal(t, "default", mgr.GetStrategy(8443).Name())
}

func TestApplyCallbacksDefaultsDir(t *testing.T) {
	cfg := Config{}
	mgr := callback.NewManager()

	ApplyCallbacks(&cfg, mgr)

	assert.Equal(t, DefaultCallbacksDir, mgr.GetCallbacksDir())
}
