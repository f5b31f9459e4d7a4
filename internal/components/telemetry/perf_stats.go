package telemetry

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

const report_perf_stats = "perf-stats"

// ReportPerfStats takes a single snapshot of the process' resource usage, records it on
// the global meter and reports it through `tel`. CLI runs are short so there is no
// point in sampling periodically.
func ReportPerfStats(ctx context.Context, tel API) {
	meter := otel.Meter("go.perf_stats")
	cpuGauge, _ := meter.Float64Gauge("cpu_usage")
	memoryGauge, _ := meter.Int64Gauge("allocated_mb")
	liveObjectsGauge, _ := meter.Int64Gauge("live_objects")
	goroutineGauge, _ := meter.Int64Gauge("goroutine_count")

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	allocatedMb := int64(memStats.Alloc / 1_000_000)
	liveObjects := int64(memStats.Mallocs) - int64(memStats.Frees)
	goroutines := int64(runtime.NumGoroutine())

	cpuUsage, err := cpu.Percent(0, false)
	if err != nil || len(cpuUsage) == 0 {
		tel.ReportWarning(report_perf_stats, "read cpu usage", err)
	} else {
		cpuGauge.Record(ctx, cpuUsage[0])
		tel.ReportDebug("cpu usage", cpuUsage[0])
	}

	memoryGauge.Record(ctx, allocatedMb)
	liveObjectsGauge.Record(ctx, liveObjects)
	goroutineGauge.Record(ctx, goroutines)

	tel.ReportCount("allocated_mb", allocatedMb)
	tel.ReportCount("live_objects", liveObjects)
	tel.ReportCount("goroutine_count", goroutines)
}
