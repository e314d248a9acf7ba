// SPDX-License-Identifier: MIT

// Package hostinfo snapshots the machine a benchmark ran on: platform,
// logical CPU count and the SIMD feature flags reported by golang.org/x/sys/cpu.
package hostinfo

import (
	"runtime"

	"github.com/samber/lo"
	"golang.org/x/sys/cpu"
)

// Info describes the host. Features lists only the flags that are present,
// in a fixed order.
type Info struct {
	GOOS      string   `json:"goos" yaml:"goos"`
	GOARCH    string   `json:"goarch" yaml:"goarch"`
	GoVersion string   `json:"go_version" yaml:"go_version"`
	NumCPU    int      `json:"num_cpu" yaml:"num_cpu"`
	Features  []string `json:"features" yaml:"features"`
}

// feature pairs a display name with its detection result.
type feature struct {
	name    string
	present bool
}

// features returns the candidate flags for every supported architecture.
// x/sys/cpu zeroes the structs of foreign architectures, so only the
// running one contributes.
func features() []feature {
	return []feature{
		{"sse2", cpu.X86.HasSSE2},
		{"sse41", cpu.X86.HasSSE41},
		{"avx", cpu.X86.HasAVX},
		{"avx2", cpu.X86.HasAVX2},
		{"fma", cpu.X86.HasFMA},
		{"avx512f", cpu.X86.HasAVX512F},
		{"avx512vnni", cpu.X86.HasAVX512VNNI},
		{"asimd", cpu.ARM64.HasASIMD},
		{"asimddp", cpu.ARM64.HasASIMDDP},
		{"sve", cpu.ARM64.HasSVE},
		{"sve2", cpu.ARM64.HasSVE2},
	}
}

// Detect returns the current host description.
func Detect() Info {
	present := lo.Filter(features(), func(f feature, _ int) bool { return f.present })

	return Info{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Features:  lo.Map(present, func(f feature, _ int) string { return f.name }),
	}
}

// Has reports whether the named feature was detected.
func (i Info) Has(name string) bool {
	return lo.Contains(i.Features, name)
}
