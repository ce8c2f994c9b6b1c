//go:build arm64

package la

import "golang.org/x/sys/cpu"

func init() {
	currentFeatures = Features{
		Arch:     "arm64",
		HasFMA:   true,
		HasASIMD: cpu.ARM64.HasASIMD,
		HasSVE:   cpu.ARM64.HasSVE,
	}
}
