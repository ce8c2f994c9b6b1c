//go:build !amd64 && !arm64

package la

import "runtime"

func init() {
	// No feature detection on other architectures; native backends still
	// work, they just report a bare architecture.
	currentFeatures = Features{Arch: runtime.GOARCH}
}
