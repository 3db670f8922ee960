package dashboard

import (
	"time"

	"github.com/rileyhilliard/vitals/internal/metrics"
)

// tickMsg signals a periodic metric refresh.
type tickMsg time.Time

// HostPatchMsg carries a partial metric set pushed by the embedding host.
// Present fields are merged into the live state; everything else is left
// untouched.
type HostPatchMsg struct {
	Patch metrics.SetPatch
}

// MetricValueMsg carries a single raw usage value for one metric. The
// value is clamped to [0,100] before being stored.
type MetricValueMsg struct {
	Metric string
	Value  float64
}

// SwitchPageMsg asks the dashboard to activate a page, exactly as a
// navigation click would. Unknown page names are a no-op.
type SwitchPageMsg struct {
	Page string
}

// HostCountMsg reports how many host connections the bridge currently has.
type HostCountMsg struct {
	Count int
}
