// Package metrics owns the dashboard's metric state: the fixed set of
// readings, the startup baseline and best-effort detection probes, and the
// periodic refresh engine that mutates the set in place.
package metrics

import "math"

// Name identifies one of the fixed dashboard metrics.
type Name string

const (
	CPU  Name = "cpu"
	RAM  Name = "ram"
	Disk Name = "disk"
	GPU  Name = "gpu"
	Proc Name = "proc"
)

// Names lists all metrics in render order.
var Names = []Name{CPU, RAM, Disk, GPU, Proc}

// Valid reports whether n is one of the fixed metric names.
func Valid(n Name) bool {
	for _, name := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// Reading holds one metric's current values. Usage is always an integer
// percentage in [0,100]. The remaining fields are metric-specific; fields
// not relevant to a metric stay zero and are never rendered for it.
type Reading struct {
	Usage   int     `json:"usage"`
	Used    float64 `json:"used,omitempty"`   // GB
	Free    float64 `json:"free,omitempty"`   // GB
	Total   float64 `json:"total,omitempty"`  // GB
	Temp    float64 `json:"temp,omitempty"`   // °C
	Memory  float64 `json:"memory,omitempty"` // GB
	Cores   int     `json:"cores,omitempty"`
	Threads int     `json:"threads,omitempty"`
	Freq    float64 `json:"freq,omitempty"` // GHz
}

// Set maps metric names to their live readings. It is created once at
// startup and mutated in place; it is never persisted.
type Set map[Name]*Reading

// Patch is a partial reading used for field-level merges pushed by the
// host. Only non-nil fields are applied.
type Patch struct {
	Usage   *float64 `json:"usage,omitempty"`
	Used    *float64 `json:"used,omitempty"`
	Free    *float64 `json:"free,omitempty"`
	Total   *float64 `json:"total,omitempty"`
	Temp    *float64 `json:"temp,omitempty"`
	Memory  *float64 `json:"memory,omitempty"`
	Cores   *int     `json:"cores,omitempty"`
	Threads *int     `json:"threads,omitempty"`
	Freq    *float64 `json:"freq,omitempty"`
}

// SetPatch is a partial metric set: metric name to partial reading.
// Unknown metric names are ignored during merge.
type SetPatch map[Name]Patch

// Clamp rounds v to the nearest whole percentage and clamps it to [0,100].
func Clamp(v float64) int {
	u := int(math.Round(v))
	if u < 0 {
		return 0
	}
	if u > 100 {
		return 100
	}
	return u
}

// clampBand clamps an integer usage value into a metric-specific band.
func clampBand(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Merge applies a partial metric set onto the live set, field by field.
// Metrics absent from the patch and fields absent from a patch entry are
// left untouched. Usage values are clamped before storage.
func (s Set) Merge(patch SetPatch) {
	for name, p := range patch {
		r, ok := s[name]
		if !ok {
			continue
		}
		if p.Usage != nil {
			r.Usage = Clamp(*p.Usage)
		}
		if p.Used != nil {
			r.Used = *p.Used
		}
		if p.Free != nil {
			r.Free = *p.Free
		}
		if p.Total != nil {
			r.Total = *p.Total
		}
		if p.Temp != nil {
			r.Temp = *p.Temp
		}
		if p.Memory != nil {
			r.Memory = *p.Memory
		}
		if p.Cores != nil {
			r.Cores = *p.Cores
		}
		if p.Threads != nil {
			r.Threads = *p.Threads
		}
		if p.Freq != nil {
			r.Freq = *p.Freq
		}
	}
}

// SetUsage clamps a raw value and assigns it as the named metric's usage.
// Returns false for unknown metric names (no-op).
func (s Set) SetUsage(name Name, value float64) bool {
	r, ok := s[name]
	if !ok {
		return false
	}
	r.Usage = Clamp(value)
	return true
}

// Baseline returns a fully populated metric set with fixed plausible
// values. It is always applied at startup so every metric has a reading
// before the first render, regardless of detection outcome.
func Baseline() Set {
	return Set{
		CPU:  {Usage: 25, Cores: 4, Threads: 8, Freq: 1.9, Temp: 46.3},
		RAM:  {Usage: 45, Total: 16, Used: 7.2, Free: 8.8},
		Disk: {Usage: 62, Total: 512, Used: 317.4, Free: 194.6},
		GPU:  {Usage: 35, Temp: 57.5, Memory: 2.8},
		Proc: {Usage: 30},
	}
}
