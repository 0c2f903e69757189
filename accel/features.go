// SPDX-License-Identifier: MIT

package accel

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features is the subset of CPU capabilities the default backend cares about.
type Features struct {
	HasAVX2      bool
	HasSSE2      bool
	HasNEON      bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}

// Vector reports whether the CPU has vector units the unrolled kernels benefit from.
func (f Features) Vector() bool {
	return f.HasAVX2 || f.HasSSE2 || f.HasNEON
}
