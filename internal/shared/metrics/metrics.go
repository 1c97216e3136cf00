package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	qaRunStartedTotal   atomic.Uint64
	qaRunCompletedTotal atomic.Uint64
	qaRunFailedTotal    atomic.Uint64
	agentDegradedTotal  atomic.Uint64

	qaRunDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000})
)

// IncQARunStarted increments the started counter.
func IncQARunStarted() {
	qaRunStartedTotal.Add(1)
}

// IncQARunCompleted increments the completed counter.
func IncQARunCompleted() {
	qaRunCompletedTotal.Add(1)
}

// IncQARunFailed increments the failed counter.
func IncQARunFailed() {
	qaRunFailedTotal.Add(1)
}

// IncAgentDegraded increments the degraded-agent counter.
func IncAgentDegraded() {
	agentDegradedTotal.Add(1)
}

// ObserveQARunDurationMs records a QA run duration in milliseconds.
func ObserveQARunDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	qaRunDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "qa_run_started_total", "Total QA runs started", qaRunStartedTotal.Load())
	writeCounter(&buf, "qa_run_completed_total", "Total QA runs completed", qaRunCompletedTotal.Load())
	writeCounter(&buf, "qa_run_failed_total", "Total QA runs failed", qaRunFailedTotal.Load())
	writeCounter(&buf, "agent_degraded_total", "Total judgment agent calls degraded", agentDegradedTotal.Load())
	writeHistogram(&buf, "qa_run_duration_ms", "QA run duration in milliseconds", qaRunDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			break
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
