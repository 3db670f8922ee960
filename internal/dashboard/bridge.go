package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/vitals/internal/metrics"
)

// Bridge exposes the host-facing entry points and forwards each call to
// the Bubble Tea program via program.Send(). This is goroutine-safe: the
// bridge server calls in from its connection goroutines while the event
// loop owns all state.
type Bridge struct {
	program *tea.Program
}

// NewBridge creates a bridge that forwards host calls to the given program.
func NewBridge(program *tea.Program) *Bridge {
	return &Bridge{program: program}
}

// UpdateDashboard merges a partial metric set into the live state and
// triggers a render.
func (b *Bridge) UpdateDashboard(patch metrics.SetPatch) {
	b.program.Send(HostPatchMsg{Patch: patch})
}

// UpdatePerformanceMetric clamps a raw value to [0,100], assigns it as
// the named metric's usage, and triggers a render.
func (b *Bridge) UpdatePerformanceMetric(metric string, value float64) {
	b.program.Send(MetricValueMsg{Metric: metric, Value: value})
}

// SwitchToPage behaves exactly as a navigation click on that page.
func (b *Bridge) SwitchToPage(page string) {
	b.program.Send(SwitchPageMsg{Page: page})
}

// HostCountChanged updates the connected-host indicator in the header.
func (b *Bridge) HostCountChanged(count int) {
	b.program.Send(HostCountMsg{Count: count})
}
