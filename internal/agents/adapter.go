package agents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"email-qa-backend/internal/shared/metrics"
	"email-qa-backend/internal/shared/telemetry"
)

// DefaultTimeout bounds one judgment agent call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Adapter wraps an Analyzer with an independent timeout and degradation
// semantics: a failed or timed-out agent yields an empty issue list flagged
// degraded instead of an error, so one agent can never abort a QA run.
type Adapter struct {
	Analyzer Analyzer
	Timeout  time.Duration
}

// NewAdapter constructs an Adapter.
func NewAdapter(analyzer Analyzer, timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Adapter{Analyzer: analyzer, Timeout: timeout}
}

// Kind reports the wrapped agent's kind.
func (a *Adapter) Kind() Kind {
	return a.Analyzer.Kind()
}

// Run executes the wrapped agent. The returned Result is always usable.
func (a *Adapter) Run(ctx context.Context, input Input) Result {
	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	type outcome struct {
		result Result
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := a.Analyzer.Analyze(ctx, input)
		done <- outcome{result: result, err: err}
	}()

	var err error
	select {
	case out := <-done:
		if out.err == nil {
			out.result.Kind = a.Analyzer.Kind()
			return out.result
		}
		err = out.err
	case <-ctx.Done():
		err = ctx.Err()
	}

	reason := "failed"
	if errors.Is(err, context.DeadlineExceeded) {
		reason = "timed out"
	}
	metrics.IncAgentDegraded()
	telemetry.Warn("agent.degraded", map[string]any{
		"agent":    string(a.Analyzer.Kind()),
		"email_id": input.EmailID,
		"error":    err.Error(),
	})
	return Result{
		Kind:     a.Analyzer.Kind(),
		Issues:   nil,
		Summary:  fmt.Sprintf("%s agent degraded: analysis %s, issues unavailable for this run", a.Analyzer.Kind(), reason),
		Degraded: true,
	}
}
