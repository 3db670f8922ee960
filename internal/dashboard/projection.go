package dashboard

import (
	"fmt"

	"github.com/rileyhilliard/vitals/internal/metrics"
)

// metricTargets are the handles every metric projects to.
type metricTargets struct {
	value  *Element
	fill   *Element
	status *Element
}

// projector holds element handles bound once at initialization, so the
// per-tick projection never resolves a key. Nil handles (dropped
// elements) are skipped silently by Element.Set.
type projector struct {
	bars map[metrics.Name]metricTargets

	cpuFreq   *Element
	cpuTemp   *Element
	cpuCores  *Element
	ramUsed   *Element
	ramTotal  *Element
	diskUsed  *Element
	diskFree  *Element
	gpuTemp   *Element
	gpuMemory *Element
}

// newProjector binds the projector's handles from the registry.
func newProjector(reg *Registry) *projector {
	bars := make(map[metrics.Name]metricTargets, len(metrics.Names))
	for _, name := range metrics.Names {
		bars[name] = metricTargets{
			value:  reg.Lookup(valueKey(name)),
			fill:   reg.Lookup(fillKey(name)),
			status: reg.Lookup(statusKey(name)),
		}
	}
	return &projector{
		bars:      bars,
		cpuFreq:   reg.Lookup(KeyCPUFreq),
		cpuTemp:   reg.Lookup(KeyCPUTemp),
		cpuCores:  reg.Lookup(KeyCPUCores),
		ramUsed:   reg.Lookup(KeyRAMUsed),
		ramTotal:  reg.Lookup(KeyRAMTotal),
		diskUsed:  reg.Lookup(KeyDiskUsed),
		diskFree:  reg.Lookup(KeyDiskFree),
		gpuTemp:   reg.Lookup(KeyGPUTemp),
		gpuMemory: reg.Lookup(KeyGPUMemory),
	}
}

// projectStatic writes the one-time-computed fields: core/thread counts
// and RAM total. Called once after detection.
func (p *projector) projectStatic(set metrics.Set) {
	cpu := set[metrics.CPU]
	p.cpuCores.Set(fmt.Sprintf("%d cores / %d threads", cpu.Cores, cpu.Threads))
	p.ramTotal.Set(fmt.Sprintf("%.0f GB total", set[metrics.RAM].Total))
}

// project writes every metric's current reading to its bound elements:
// percentage text, fill bar, status indicator, and the metric-specific
// detail texts.
func (p *projector) project(set metrics.Set) {
	for _, name := range metrics.Names {
		reading, ok := set[name]
		if !ok {
			continue
		}
		targets := p.bars[name]
		targets.value.Set(fmt.Sprintf("%d%%", reading.Usage))
		targets.fill.Set(FillBar(fillWidth, reading.Usage))
		targets.status.Set(StatusIndicator(reading.Usage))
	}

	cpu := set[metrics.CPU]
	p.cpuFreq.Set(fmt.Sprintf("%.2f GHz", cpu.Freq))
	p.cpuTemp.Set(fmt.Sprintf("%.0f°C", cpu.Temp))

	ram := set[metrics.RAM]
	p.ramUsed.Set(fmt.Sprintf("%.1f GB used", ram.Used))

	disk := set[metrics.Disk]
	p.diskUsed.Set(fmt.Sprintf("%.1f GB used", disk.Used))
	p.diskFree.Set(fmt.Sprintf("%.1f GB free", disk.Free))

	gpu := set[metrics.GPU]
	p.gpuTemp.Set(fmt.Sprintf("%.0f°C", gpu.Temp))
	p.gpuMemory.Set(fmt.Sprintf("%.1f GB", gpu.Memory))
}
