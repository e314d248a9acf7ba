// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matbench/internal/hostinfo"
)

// Format selects the Report encoding.
type Format int

const (
	// FormatText is a short human-readable block with grouped digits.
	FormatText Format = iota
	// FormatJSON is an indented JSON object.
	FormatJSON
	// FormatYAML is a YAML document.
	FormatYAML
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat maps "text", "json" or "yaml" (case-insensitive) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, UsageErrorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Summary condenses per-pass timings. Durations are in seconds.
type Summary struct {
	Count  int     `json:"count" yaml:"count"`
	Total  float64 `json:"total_s" yaml:"total_s"`
	Min    float64 `json:"min_s" yaml:"min_s"`
	Max    float64 `json:"max_s" yaml:"max_s"`
	Mean   float64 `json:"mean_s" yaml:"mean_s"`
	Median float64 `json:"median_s" yaml:"median_s"`
}

// Summarize computes count, total, min, max, mean and median over samples.
// An empty input yields the zero Summary.
func Summarize(samples []time.Duration) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	total := lo.Sum(samples)

	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	n := len(sorted)
	median := sorted[n/2]
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	return Summary{
		Count:  n,
		Total:  total.Seconds(),
		Min:    lo.Min(samples).Seconds(),
		Max:    lo.Max(samples).Seconds(),
		Mean:   (total / time.Duration(n)).Seconds(),
		Median: median.Seconds(),
	}
}

// MaxSamples bounds Report.Samples. Passes beyond it still count towards
// Count, Total, Min, Max and Mean, but not towards Median.
const MaxSamples = 4096

// Report is the outcome of Run.
//   - Verified is true only when verification ran (limit > 0) and passed.
//   - MACsPerPass = height*width*height multiply-accumulates per pass.
//   - Samples holds the durations of the first MaxSamples passes only.
type Report struct {
	Limit         int             `json:"limit" yaml:"limit"`
	Width         int             `json:"width" yaml:"width"`
	Height        int             `json:"height" yaml:"height"`
	Verified      bool            `json:"verified" yaml:"verified"`
	MACsPerPass   int64           `json:"macs_per_pass" yaml:"macs_per_pass"`
	MACsPerSecond float64         `json:"macs_per_second" yaml:"macs_per_second"`
	Summary       Summary         `json:"summary" yaml:"summary"`
	Host          *hostinfo.Info  `json:"host,omitempty" yaml:"host,omitempty"`
	Samples       []time.Duration `json:"-" yaml:"-"`

	passes   int
	total    time.Duration
	min, max time.Duration
}

// newReport prepares an empty report for the given dimensions.
func newReport(limit, width, height int) *Report {
	return &Report{
		Limit:       limit,
		Width:       width,
		Height:      height,
		MACsPerPass: int64(height) * int64(width) * int64(height),
		Samples:     make([]time.Duration, 0, min(limit, MaxSamples)),
	}
}

// record folds one pass duration into the running totals.
func (r *Report) record(d time.Duration) {
	if r.passes == 0 || d < r.min {
		r.min = d
	}
	if r.passes == 0 || d > r.max {
		r.max = d
	}
	r.passes++
	r.total += d
	if len(r.Samples) < MaxSamples {
		r.Samples = append(r.Samples, d)
	}
}

// finalize derives Summary and throughput from the running totals.
// Median comes from the retained Samples.
func (r *Report) finalize() {
	if r.passes == 0 {
		r.Summary = Summary{}
		return
	}
	r.Summary = Summary{
		Count:  r.passes,
		Total:  r.total.Seconds(),
		Min:    r.min.Seconds(),
		Max:    r.max.Seconds(),
		Mean:   (r.total / time.Duration(r.passes)).Seconds(),
		Median: Summarize(r.Samples).Median,
	}
	if r.Summary.Total > 0 {
		r.MACsPerSecond = float64(r.MACsPerPass) * float64(r.Summary.Count) / r.Summary.Total
	}
}

// Encode writes r to w in the requested format.
func (r *Report) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		return r.writeText(w)
	default:
		return UsageErrorf("unknown format %d", int(f))
	}
}

// writeText renders the human-readable block with English digit grouping.
func (r *Report) writeText(w io.Writer) error {
	p := message.NewPrinter(language.English)
	status := "skipped"
	if r.Limit > 0 {
		status = "failed"
		if r.Verified {
			status = "ok"
		}
	}

	var b strings.Builder
	p.Fprintf(&b, "matbench  %d x (%dx%d · %dx%d)\n", r.Limit, r.Height, r.Width, r.Width, r.Height)
	p.Fprintf(&b, "verify    %s\n", status)
	p.Fprintf(&b, "mac/pass  %d\n", r.MACsPerPass)
	if r.Summary.Count > 0 {
		p.Fprintf(&b, "time      total %.6fs  min %.6fs  median %.6fs  max %.6fs\n",
			r.Summary.Total, r.Summary.Min, r.Summary.Median, r.Summary.Max)
		p.Fprintf(&b, "mac/s     %.0f\n", r.MACsPerSecond)
	}
	if r.Host != nil {
		p.Fprintf(&b, "host      %s/%s %s, %d cpus [%s]\n",
			r.Host.GOOS, r.Host.GOARCH, r.Host.GoVersion, r.Host.NumCPU, strings.Join(r.Host.Features, " "))
	}

	_, err := io.WriteString(w, b.String())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
