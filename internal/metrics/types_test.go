package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"in range", 42, 42},
		{"above range", 150, 100},
		{"below range", -30, 0},
		{"upper bound", 100, 100},
		{"lower bound", 0, 0},
		{"rounds up", 59.5, 60},
		{"rounds down", 59.4, 59},
		{"just over", 100.4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Clamp(tt.in))
		})
	}
}

func TestValid(t *testing.T) {
	for _, name := range Names {
		assert.True(t, Valid(name))
	}
	assert.False(t, Valid("network"))
	assert.False(t, Valid(""))
}

func TestBaseline_FullyPopulated(t *testing.T) {
	set := Baseline()

	require.Len(t, set, len(Names))
	for _, name := range Names {
		r, ok := set[name]
		require.True(t, ok, "baseline missing %s", name)
		assert.GreaterOrEqual(t, r.Usage, 0, "%s usage", name)
		assert.LessOrEqual(t, r.Usage, 100, "%s usage", name)
	}

	// Static fields present where the metric uses them
	assert.Greater(t, set[CPU].Cores, 0)
	assert.Greater(t, set[CPU].Threads, 0)
	assert.Greater(t, set[RAM].Total, 0.0)
	assert.Greater(t, set[Disk].Total, 0.0)
}

func TestMerge_FieldLevel(t *testing.T) {
	set := Baseline()
	prevUsage := set[RAM].Usage
	prevTotal := set[RAM].Total
	prevCPU := *set[CPU]

	used := 5.0
	set.Merge(SetPatch{RAM: {Used: &used}})

	assert.Equal(t, 5.0, set[RAM].Used)
	assert.Equal(t, prevUsage, set[RAM].Usage, "usage must be untouched")
	assert.Equal(t, prevTotal, set[RAM].Total, "total must be untouched")
	assert.Equal(t, prevCPU, *set[CPU], "other metrics must be untouched")
}

func TestMerge_ClampsUsage(t *testing.T) {
	set := Baseline()

	over := 150.0
	under := -30.0
	set.Merge(SetPatch{CPU: {Usage: &over}, GPU: {Usage: &under}})

	assert.Equal(t, 100, set[CPU].Usage)
	assert.Equal(t, 0, set[GPU].Usage)
}

func TestMerge_UnknownMetricIgnored(t *testing.T) {
	set := Baseline()
	before := *set[CPU]

	v := 99.0
	set.Merge(SetPatch{"network": {Usage: &v}})

	assert.Equal(t, before, *set[CPU])
	assert.Len(t, set, len(Names), "merge must not add metrics")
}

func TestMerge_MultipleFields(t *testing.T) {
	set := Baseline()

	usage := 73.0
	temp := 81.5
	cores := 12
	set.Merge(SetPatch{CPU: {Usage: &usage, Temp: &temp, Cores: &cores}})

	assert.Equal(t, 73, set[CPU].Usage)
	assert.Equal(t, 81.5, set[CPU].Temp)
	assert.Equal(t, 12, set[CPU].Cores)
}

func TestSetUsage(t *testing.T) {
	set := Baseline()

	assert.True(t, set.SetUsage(CPU, 150))
	assert.Equal(t, 100, set[CPU].Usage)

	assert.True(t, set.SetUsage(CPU, -30))
	assert.Equal(t, 0, set[CPU].Usage)

	assert.True(t, set.SetUsage(GPU, 55.6))
	assert.Equal(t, 56, set[GPU].Usage)

	assert.False(t, set.SetUsage("network", 50), "unknown metric is a no-op")
}
