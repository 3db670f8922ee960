package dashboard

import "github.com/rileyhilliard/vitals/internal/metrics"

// ElementKey is a stable semantic key identifying one render target.
// Keys follow the {metric}-{field} convention.
type ElementKey string

// Per-metric render targets. Every metric has a value, a fill bar, and a
// status indicator; detail targets are metric-specific.
const (
	KeyCPUValue  ElementKey = "cpu-value"
	KeyCPUFill   ElementKey = "cpu-fill"
	KeyCPUStatus ElementKey = "cpu-status"
	KeyCPUFreq   ElementKey = "cpu-freq"
	KeyCPUTemp   ElementKey = "cpu-temp"
	KeyCPUCores  ElementKey = "cpu-cores"

	KeyRAMValue  ElementKey = "ram-value"
	KeyRAMFill   ElementKey = "ram-fill"
	KeyRAMStatus ElementKey = "ram-status"
	KeyRAMUsed   ElementKey = "ram-used"
	KeyRAMTotal  ElementKey = "ram-total"

	KeyDiskValue  ElementKey = "disk-value"
	KeyDiskFill   ElementKey = "disk-fill"
	KeyDiskStatus ElementKey = "disk-status"
	KeyDiskUsed   ElementKey = "disk-used"
	KeyDiskFree   ElementKey = "disk-free"

	KeyGPUValue  ElementKey = "gpu-value"
	KeyGPUFill   ElementKey = "gpu-fill"
	KeyGPUStatus ElementKey = "gpu-status"
	KeyGPUTemp   ElementKey = "gpu-temp"
	KeyGPUMemory ElementKey = "gpu-memory"

	KeyProcValue  ElementKey = "proc-value"
	KeyProcFill   ElementKey = "proc-fill"
	KeyProcStatus ElementKey = "proc-status"
)

// AllKeys lists every element key the dashboard renders.
var AllKeys = []ElementKey{
	KeyCPUValue, KeyCPUFill, KeyCPUStatus, KeyCPUFreq, KeyCPUTemp, KeyCPUCores,
	KeyRAMValue, KeyRAMFill, KeyRAMStatus, KeyRAMUsed, KeyRAMTotal,
	KeyDiskValue, KeyDiskFill, KeyDiskStatus, KeyDiskUsed, KeyDiskFree,
	KeyGPUValue, KeyGPUFill, KeyGPUStatus, KeyGPUTemp, KeyGPUMemory,
	KeyProcValue, KeyProcFill, KeyProcStatus,
}

// valueKey returns the percentage-text key for a metric.
func valueKey(name metrics.Name) ElementKey {
	return ElementKey(string(name) + "-value")
}

// fillKey returns the fill-bar key for a metric.
func fillKey(name metrics.Name) ElementKey {
	return ElementKey(string(name) + "-fill")
}

// statusKey returns the status-indicator key for a metric.
func statusKey(name metrics.Name) ElementKey {
	return ElementKey(string(name) + "-status")
}

// Element is a render target: a handle whose content projection writes
// and the view reads. A nil Element is valid and ignores writes, which is
// how a missing target is silently skipped.
type Element struct {
	content string
}

// Set replaces the element's content. Safe on a nil element (no-op).
func (e *Element) Set(content string) {
	if e == nil {
		return
	}
	e.content = content
}

// Content returns the element's current content, or "" on a nil element.
func (e *Element) Content() string {
	if e == nil {
		return ""
	}
	return e.content
}

// Registry maps semantic keys to element handles. It is built once at
// initialization; projection and the view hold handles, not keys, so
// per-tick rendering never resolves a key.
type Registry struct {
	elements map[ElementKey]*Element
}

// NewRegistry creates a registry with every dashboard element present.
func NewRegistry() *Registry {
	elements := make(map[ElementKey]*Element, len(AllKeys))
	for _, key := range AllKeys {
		elements[key] = &Element{}
	}
	return &Registry{elements: elements}
}

// Lookup returns the handle for a key, or nil when the element is absent.
func (r *Registry) Lookup(key ElementKey) *Element {
	return r.elements[key]
}

// Content returns the current content for a key, or "" when absent.
func (r *Registry) Content(key ElementKey) string {
	return r.elements[key].Content()
}

// Drop removes an element from the registry. Handles already bound to it
// keep working; handles bound afterwards are nil and skip writes.
func (r *Registry) Drop(key ElementKey) {
	delete(r.elements, key)
}
