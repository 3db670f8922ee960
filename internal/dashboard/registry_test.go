package dashboard

import (
	"testing"

	"github.com/rileyhilliard/vitals/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_AllKeysPresent(t *testing.T) {
	reg := NewRegistry()

	for _, key := range AllKeys {
		assert.NotNil(t, reg.Lookup(key), "key %s", key)
	}
}

func TestRegistry_Drop(t *testing.T) {
	reg := NewRegistry()

	reg.Drop(KeyCPUValue)

	assert.Nil(t, reg.Lookup(KeyCPUValue))
	assert.Empty(t, reg.Content(KeyCPUValue))
}

func TestElement_NilSafe(t *testing.T) {
	var e *Element

	assert.NotPanics(t, func() { e.Set("ignored") })
	assert.Empty(t, e.Content())
}

func TestElement_SetAndContent(t *testing.T) {
	e := &Element{}
	e.Set("42%")
	assert.Equal(t, "42%", e.Content())
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, KeyCPUValue, valueKey(metrics.CPU))
	assert.Equal(t, KeyDiskFill, fillKey(metrics.Disk))
	assert.Equal(t, KeyGPUStatus, statusKey(metrics.GPU))
}

func TestProjector_SkipsMissingElements(t *testing.T) {
	reg := NewRegistry()
	reg.Drop(KeyCPUValue)
	reg.Drop(KeyGPUTemp)

	set := metrics.Baseline()
	p := newProjector(reg)

	require.NotPanics(t, func() {
		p.projectStatic(set)
		p.project(set)
	})

	// The dropped elements stay empty; everything else is written.
	assert.Empty(t, reg.Content(KeyCPUValue))
	assert.Empty(t, reg.Content(KeyGPUTemp))
	assert.NotEmpty(t, reg.Content(KeyRAMValue))
	assert.NotEmpty(t, reg.Content(KeyGPUMemory))
}

func TestProjector_WritesFormattedValues(t *testing.T) {
	reg := NewRegistry()
	set := metrics.Baseline()
	p := newProjector(reg)

	p.projectStatic(set)
	p.project(set)

	assert.Equal(t, "62%", reg.Content(KeyDiskValue))
	assert.Contains(t, reg.Content(KeyDiskUsed), "317.4 GB used")
	assert.Contains(t, reg.Content(KeyDiskFree), "194.6 GB free")
	assert.Contains(t, reg.Content(KeyCPUFreq), "GHz")
	assert.Contains(t, reg.Content(KeyGPUTemp), "°C")
	assert.NotEmpty(t, reg.Content(KeyProcValue))
	assert.NotEmpty(t, reg.Content(KeyProcFill))
}
