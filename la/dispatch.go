// Copyright 2025 go-linalg Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package la

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read once at startup.
const (
	// EnvNoNative disables every native backend when set to a true value.
	EnvNoNative = "LA_NO_NATIVE"

	// EnvBackend forces a registered native backend by name.
	EnvBackend = "LA_BACKEND"
)

// Features lists the CPU capabilities relevant to native BLAS backends.
type Features struct {
	Arch   string
	HasFMA bool // x86 FMA3 or arm64 (always)
	HasAVX bool
	// HasAVX2 is true on Haswell+ and Zen+.
	HasAVX2   bool
	HasAVX512 bool
	HasASIMD  bool // NEON
	HasSVE    bool
}

// currentFeatures is set by init() in dispatch_*.go files.
var currentFeatures Features

// CurrentFeatures returns the CPU features detected at startup.
func CurrentFeatures() Features {
	return currentFeatures
}

// String lists the detected features, e.g. "amd64 avx avx2 fma".
func (f Features) String() string {
	parts := []string{f.Arch}
	for _, flag := range []struct {
		on   bool
		name string
	}{
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasAVX512, "avx512"},
		{f.HasASIMD, "asimd"},
		{f.HasSVE, "sve"},
		{f.HasFMA, "fma"},
	} {
		if flag.on {
			parts = append(parts, flag.name)
		}
	}
	return strings.Join(parts, " ")
}

// NoNativeEnv checks if the LA_NO_NATIVE environment variable is set.
// When set, every kernel runs its generic Go implementation regardless of
// the registered backends. This is useful for testing and debugging.
func NoNativeEnv() bool {
	val := os.Getenv(EnvNoNative)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// BackendEnv returns the backend name requested through LA_BACKEND,
// lower-cased, or "" for automatic selection.
func BackendEnv() string {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(EnvBackend)))
	if val == "auto" {
		return ""
	}
	return val
}
