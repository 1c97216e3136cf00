package checks

import (
	"context"

	"golang.org/x/sync/errgroup"

	"email-qa-backend/internal/emails"
)

// CheckFunc is one pure structural check. It must return exactly one result
// and never panic on malformed input.
type CheckFunc func(htmlContent string, meta emails.Metadata) DeterministicResult

// Check pairs a stable name with its implementation.
type Check struct {
	Name string
	Fn   CheckFunc
}

// Runner executes a fixed, ordered battery of checks.
type Runner struct {
	battery []Check
}

// NewRunner constructs a Runner over the given battery. Order is preserved
// in the reported results.
func NewRunner(battery []Check) *Runner {
	return &Runner{battery: battery}
}

// DefaultRunner returns the standard battery in its canonical order.
func DefaultRunner() *Runner {
	return NewRunner([]Check{
		{Name: "alt_text", Fn: checkAltText},
		{Name: "links", Fn: checkLinks},
		{Name: "subject_line", Fn: checkSubjectLine},
		{Name: "preheader", Fn: checkPreheader},
		{Name: "template_meta", Fn: checkTemplateMeta},
		{Name: "width", Fn: checkWidth},
		{Name: "background_color", Fn: checkBackgroundColor},
		{Name: "image_dimensions", Fn: checkImageDimensions},
		{Name: "long_copy", Fn: checkLongCopy},
	})
}

// Names returns the registered check names in battery order.
func (r *Runner) Names() []string {
	out := make([]string, len(r.battery))
	for i, check := range r.battery {
		out[i] = check.Name
	}
	return out
}

// Run executes every check. Checks are independent and run concurrently;
// results come back in battery order, one per registered check.
func (r *Runner) Run(ctx context.Context, htmlContent string, meta emails.Metadata) ([]DeterministicResult, error) {
	results := make([]DeterministicResult, len(r.battery))

	g, ctx := errgroup.WithContext(ctx)
	for i, check := range r.battery {
		i, check := i, check
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = check.Fn(htmlContent, meta)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
