package la

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoNativeEnv(t *testing.T) {
	for val, want := range map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true,
	} {
		t.Setenv(EnvNoNative, val)
		assert.Equal(t, want, NoNativeEnv(), "%s=%q", EnvNoNative, val)
	}
}

func TestBackendEnv(t *testing.T) {
	t.Setenv(EnvBackend, " Netlib ")
	assert.Equal(t, "netlib", BackendEnv())
	t.Setenv(EnvBackend, "AUTO")
	assert.Equal(t, "", BackendEnv())
}

func TestCurrentFeatures(t *testing.T) {
	f := CurrentFeatures()
	assert.Equal(t, runtime.GOARCH, f.Arch)
	assert.Contains(t, f.String(), runtime.GOARCH)
	if f.HasAVX2 {
		assert.True(t, f.HasAVX)
	}
}
