package metrics

import (
	"fmt"
	"math"
	"os"
	"runtime"
	"strconv"
	"strings"
	"syscall"

	"github.com/rileyhilliard/vitals/internal/errors"
	"github.com/rileyhilliard/vitals/internal/logger"
)

const bytesPerGB = 1024 * 1024 * 1024

// Detect overlays best-effort real measurements onto the baseline set.
// Each probe is independently optional: a failure is logged and skipped,
// never fatal, leaving the baseline value in place. Only static,
// once-computed fields are touched here; per-tick values come from the
// refresh engine.
func Detect(set Set, log logger.Logger) {
	detectCPUTopology(set)

	if err := detectMemoryTotal(set); err != nil {
		log.Warn("memory detection unavailable: %v", err)
	}

	if err := detectDiskCapacity(set); err != nil {
		log.Warn("disk detection unavailable: %v", err)
	}
}

// detectCPUTopology fills core and thread counts from the runtime.
// NumCPU reports logical CPUs; physical cores are approximated as half,
// matching common SMT configurations.
func detectCPUTopology(set Set) {
	threads := runtime.NumCPU()
	cores := threads / 2
	if cores < 1 {
		cores = 1
	}
	set[CPU].Threads = threads
	set[CPU].Cores = cores
}

// detectMemoryTotal reads total physical memory from /proc/meminfo.
func detectMemoryTotal(set Set) error {
	data, err := os.ReadFile("/proc/meminfo")
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			"Cannot read /proc/meminfo",
			"Baseline RAM total is used instead")
	}

	for _, line := range strings.Split(string(data), "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			break
		}
		total := math.Round(kb/1024/1024*10) / 10 // kB -> GB, one decimal
		ram := set[RAM]
		ram.Total = total
		ram.Used = math.Round(float64(ram.Usage)/100*total*10) / 10
		ram.Free = math.Round((total-ram.Used)*10) / 10
		return nil
	}

	return errors.New(errors.ErrProbe,
		"MemTotal not present in /proc/meminfo",
		"Baseline RAM total is used instead")
}

// detectDiskCapacity reads root filesystem capacity and usage via statfs.
func detectDiskCapacity(set Set) error {
	var st syscall.Statfs_t
	if err := syscall.Statfs("/", &st); err != nil {
		return errors.WrapWithCode(err, errors.ErrProbe,
			fmt.Sprintf("statfs on %q failed", "/"),
			"Baseline disk values are used instead")
	}

	total := float64(st.Blocks) * float64(st.Bsize) / bytesPerGB
	free := float64(st.Bavail) * float64(st.Bsize) / bytesPerGB
	if total <= 0 {
		return errors.New(errors.ErrProbe,
			"statfs reported zero capacity",
			"Baseline disk values are used instead")
	}
	used := total - free

	disk := set[Disk]
	disk.Total = math.Round(total*10) / 10
	disk.Used = math.Round(used*10) / 10
	disk.Free = math.Round(free*10) / 10
	disk.Usage = Clamp(used / total * 100)
	return nil
}
