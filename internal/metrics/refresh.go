package metrics

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

// Outcome reports which of the two paths a refresh tick took.
type Outcome int

const (
	// OutcomeMeasured means the measured/simulated path completed.
	OutcomeMeasured Outcome = iota
	// OutcomeFallback means the measured path failed and the whole tick
	// was replaced by the fallback simulation.
	OutcomeFallback
)

// String returns a human-readable label for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeMeasured:
		return "measured"
	case OutcomeFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Smoothing weights for the CPU usage estimate.
const (
	emaOldWeight = 0.7
	emaNewWeight = 0.3
)

// cpuBudget is the busy-work window used to estimate CPU contention.
// This is the one intentional synchronous stall per tick.
const cpuBudget = 10 * time.Millisecond

// diskChangeChance is the per-tick probability that disk usage moves.
const diskChangeChance = 0.10

// band is a metric-specific plausible usage range for the random walk.
type band struct {
	lo, hi int
}

// walkBands bound the per-tick random walk on the measured path.
var walkBands = map[Name]band{
	GPU:  {20, 90},
	Proc: {15, 85},
	Disk: {40, 90},
}

// fallbackBands bound the all-metrics nudge when a tick falls back to
// full simulation.
var fallbackBands = map[Name]band{
	CPU:  {10, 90},
	RAM:  {30, 85},
	GPU:  {20, 90},
	Proc: {15, 85},
}

// Refresher mutates a metric set in place on every tick. The fallible
// probes are injectable so tests can force either outcome.
type Refresher struct {
	set Set
	rng *rand.Rand
	log logger.Logger

	cpuProbe func() (int, error)
	memProbe func() (used, total float64, err error)
}

// Option customizes a Refresher. Used by tests to substitute the
// fallible probes and pin the random source.
type Option func(*Refresher)

// WithCPUProbe replaces the CPU usage estimate probe.
func WithCPUProbe(probe func() (int, error)) Option {
	return func(r *Refresher) { r.cpuProbe = probe }
}

// WithMemProbe replaces the heap statistics probe.
func WithMemProbe(probe func() (used, total float64, err error)) Option {
	return func(r *Refresher) { r.memProbe = probe }
}

// WithRandSource replaces the random source driving the walk.
func WithRandSource(src rand.Source) Option {
	return func(r *Refresher) { r.rng = rand.New(src) }
}

// NewRefresher creates a refresher over the given set.
func NewRefresher(set Set, log logger.Logger, opts ...Option) *Refresher {
	if log == nil {
		log = logger.Noop()
	}
	r := &Refresher{
		set:      set,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      log,
		cpuProbe: probeCPUOverrun,
		memProbe: probeHeap,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Set returns the metric set the refresher mutates.
func (r *Refresher) Set() Set {
	return r.set
}

// Tick performs one refresh. A tick has exactly two outcomes: the
// measured path succeeds, or any error replaces the whole tick with the
// fallback simulation. The loop is never allowed to stop on error.
func (r *Refresher) Tick() Outcome {
	if err := r.refreshMeasured(); err != nil {
		r.log.Warn("refresh failed, simulating this tick: %v", err)
		r.refreshFallback()
		return OutcomeFallback
	}
	return OutcomeMeasured
}

// Smooth applies the exponential moving average to a CPU usage estimate.
func Smooth(old, estimate int) int {
	return Clamp(emaOldWeight*float64(old) + emaNewWeight*float64(estimate))
}

// refreshMeasured runs the ordered measured/simulated update: CPU
// estimate, real memory read, then the random walk for the rest.
func (r *Refresher) refreshMeasured() error {
	estimate, err := r.cpuProbe()
	if err != nil {
		return err
	}
	cpu := r.set[CPU]
	cpu.Usage = Smooth(cpu.Usage, estimate)
	deriveCPU(cpu)

	used, total, err := r.memProbe()
	if err != nil {
		return err
	}
	if total <= 0 {
		return errors.New(errors.ErrProbe,
			"Heap probe reported zero total",
			"Falling back to simulated memory usage")
	}
	ram := r.set[RAM]
	ram.Usage = Clamp(used / total * 100)
	deriveRAM(ram)

	r.walk(GPU, 8)
	deriveGPU(r.set[GPU])

	r.walk(Proc, 10)

	// Disk drifts rarely and slowly.
	if r.rng.Float64() < diskChangeChance {
		r.walk(Disk, 2)
		deriveDisk(r.set[Disk])
	}

	return nil
}

// refreshFallback nudges every metric except disk within its plausible
// band. Used when any step of the measured path fails.
func (r *Refresher) refreshFallback() {
	for _, name := range []Name{CPU, RAM, GPU, Proc} {
		reading := r.set[name]
		b := fallbackBands[name]
		delta := r.rng.Intn(13) - 6
		reading.Usage = clampBand(reading.Usage+delta, b.lo, b.hi)
	}
	deriveCPU(r.set[CPU])
	deriveRAM(r.set[RAM])
	deriveGPU(r.set[GPU])
}

// walk nudges a metric's usage by a random delta in [-maxDelta, maxDelta],
// clamped to its plausible band.
func (r *Refresher) walk(name Name, maxDelta int) {
	reading := r.set[name]
	b := walkBands[name]
	delta := r.rng.Intn(2*maxDelta+1) - maxDelta
	reading.Usage = clampBand(reading.Usage+delta, b.lo, b.hi)
}

// Dependent fields are deterministic functions of the usage they
// correlate with, so repeated renders of the same usage are stable.

func deriveCPU(r *Reading) {
	r.Temp = round1(35 + 0.45*float64(r.Usage))
	r.Freq = round2(1.2 + 0.025*float64(r.Usage))
}

func deriveRAM(r *Reading) {
	r.Used = round1(float64(r.Usage) / 100 * r.Total)
	r.Free = round1(r.Total - r.Used)
}

func deriveGPU(r *Reading) {
	r.Temp = round1(40 + 0.5*float64(r.Usage))
	r.Memory = round1(0.08 * float64(r.Usage))
}

func deriveDisk(r *Reading) {
	r.Used = round1(float64(r.Usage) / 100 * r.Total)
	r.Free = round1(r.Total - r.Used)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// probeCPUOverrun estimates CPU contention from how far a fixed busy-work
// budget overruns its wall-clock target. A loaded machine schedules the
// loop less often, stretching the elapsed time. Coarse signal, not real
// telemetry.
func probeCPUOverrun() (int, error) {
	start := time.Now()
	deadline := start.Add(cpuBudget)
	sink := 1.0
	for time.Now().Before(deadline) {
		for i := 0; i < 4096; i++ {
			sink += math.Sqrt(sink)
		}
	}
	elapsed := time.Since(start)

	if math.IsNaN(sink) || math.IsInf(sink, 0) {
		return 0, errors.New(errors.ErrProbe,
			"CPU busy-work diverged",
			"Falling back to simulated CPU usage")
	}

	ratio := float64(elapsed) / float64(cpuBudget)
	return Clamp((ratio - 1) * 400), nil
}

// probeHeap reads live heap statistics from the runtime. Used and total
// are both in bytes.
func probeHeap() (used, total float64, err error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.HeapAlloc), float64(m.Sys), nil
}
