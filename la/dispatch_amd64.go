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

//go:build amd64

package la

import "golang.org/x/sys/cpu"

func init() {
	currentFeatures = Features{
		Arch:   "amd64",
		HasAVX: cpu.X86.HasAVX,
		// FMA is only usable together with AVX state.
		HasFMA:    cpu.X86.HasAVX && cpu.X86.HasFMA,
		HasAVX2:   cpu.X86.HasAVX2,
		HasAVX512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512VL,
	}
}
