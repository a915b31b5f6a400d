// Package executor runs the filtered catalogue against a target connector.
// Its central property is per-check failure containment: a fault, timeout or
// connector error inside one check becomes an ERROR outcome for that check
// only and never aborts evaluation of the remaining controls.
package executor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yugabench/yugabench/internal/aggregate"
	"github.com/yugabench/yugabench/internal/catalog"
	"github.com/yugabench/yugabench/internal/connector"
	"github.com/yugabench/yugabench/internal/models"
)

// DefaultCheckTimeout bounds a single check when no timeout is configured.
const DefaultCheckTimeout = 30 * time.Second

// Options configures a run.
type Options struct {
	// Workers sets the bounded-parallel pool size; values <= 1 select the
	// sequential scheduler. Outcomes are collected in catalogue order in
	// either mode.
	Workers int

	// CheckTimeout bounds each check execution. On expiry the check resolves
	// ERROR with a timeout message; a hung target can never block the run
	// indefinitely.
	CheckTimeout time.Duration

	// Skip maps control IDs to a reason; matching controls resolve SKIPPED
	// without executing (used for policy-disabled controls).
	Skip map[string]string
}

// Runner executes benchmark runs against one connector.
type Runner struct {
	conn connector.Connector
	log  *logrus.Entry
	opts Options
}

// New returns a Runner bound to conn.
func New(conn connector.Connector, opts Options, log *logrus.Entry) *Runner {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if opts.CheckTimeout <= 0 {
		opts.CheckTimeout = DefaultCheckTimeout
	}
	return &Runner{conn: conn, log: log, opts: opts}
}

// Run evaluates every control selected by f, in catalogue order, and returns
// the finalized RunResult. Every selected control appears exactly once in the
// result regardless of how its checks fared. When ctx is cancelled, in-flight
// checks finish or time out, remaining controls resolve ERROR with an aborted
// message, and the result is marked truncated.
func (r *Runner) Run(ctx context.Context, cat *catalog.Catalog, f catalog.Filter, meta aggregate.Meta) *models.RunResult {
	selected := cat.Select(f)
	results := make([]models.ControlResult, len(selected))

	var truncated bool
	if r.opts.Workers > 1 {
		truncated = r.runParallel(ctx, selected, results)
	} else {
		truncated = r.runSequential(ctx, selected, results)
	}

	return aggregate.Build(results, meta, truncated)
}

func (r *Runner) runSequential(ctx context.Context, selected []catalog.Control, results []models.ControlResult) bool {
	for i, ctl := range selected {
		if ctx.Err() != nil {
			r.markAborted(selected[i:], results[i:])
			return true
		}
		results[i] = r.evalControl(ctx, ctl)
	}
	return false
}

// runParallel dispatches control indices to a bounded worker pool. Each worker
// writes into its own slot of results, so catalogue order is preserved no
// matter the completion order, and one control's failure never cancels a
// sibling.
func (r *Runner) runParallel(ctx context.Context, selected []catalog.Control, results []models.ControlResult) bool {
	indices := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < r.opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = r.evalControl(ctx, selected[i])
			}
		}()
	}

	truncated := false
	dispatched := 0
dispatch:
	for i := range selected {
		select {
		case indices <- i:
			dispatched++
		case <-ctx.Done():
			truncated = true
			break dispatch
		}
	}
	close(indices)
	wg.Wait()

	if truncated {
		// Workers may have picked up (and aborted) some dispatched controls
		// after cancellation; everything never dispatched is marked here.
		r.markAborted(selected[dispatched:], results[dispatched:])
	}
	return truncated
}

func (r *Runner) markAborted(selected []catalog.Control, results []models.ControlResult) {
	for i, ctl := range selected {
		if results[i].ControlID != "" {
			continue
		}
		res := newResult(ctl)
		res.Status = models.StatusError
		res.Checks = []models.CheckOutcome{{
			Check:   "run aborted",
			Status:  models.StatusError,
			Message: "run aborted before this control executed",
		}}
		results[i] = res
	}
}

// newResult copies the control's identity fields into a result shell.
func newResult(ctl catalog.Control) models.ControlResult {
	return models.ControlResult{
		ControlID:    ctl.ID,
		Title:        ctl.Title,
		Section:      ctl.Section,
		ProfileLevel: ctl.ProfileLevel,
		Severity:     ctl.Severity,
		Automated:    ctl.Automated,
		Remediation:  ctl.Remediation,
	}
}

// evalControl resolves one control. Manual controls and policy-skipped
// controls are decided here without touching the target; automated controls
// run their checks in declared order.
func (r *Runner) evalControl(ctx context.Context, ctl catalog.Control) models.ControlResult {
	res := newResult(ctl)

	if reason, skip := r.opts.Skip[ctl.ID]; skip {
		res.Status = models.StatusSkipped
		res.Checks = []models.CheckOutcome{{
			Check:   "skipped",
			Status:  models.StatusSkipped,
			Message: reason,
		}}
		return res
	}
	if !ctl.Automated {
		res.Status = models.StatusManual
		return res
	}

	res.Checks = make([]models.CheckOutcome, 0, len(ctl.Checks))
	for _, spec := range ctl.Checks {
		res.Checks = append(res.Checks, r.runCheck(ctx, spec))
	}
	res.Status = aggregate.ResolveStatus(res.Checks)

	r.log.WithFields(logrus.Fields{
		"control": ctl.ID,
		"status":  res.Status,
	}).Debug("control evaluated")
	return res
}

// runCheck is the isolation boundary around one check: a panic in capability
// or grading code, a connector error, or a timeout all become an ERROR
// outcome returned as data.
func (r *Runner) runCheck(ctx context.Context, spec catalog.CheckSpec) (out models.CheckOutcome) {
	start := time.Now()
	out = models.CheckOutcome{
		Check:    spec.Name,
		Expected: spec.Expect.Describe(),
	}

	defer func() {
		out.Duration = time.Since(start)
		if p := recover(); p != nil {
			out.Status = models.StatusError
			out.Message = fmt.Sprintf("check fault: %v", p)
			r.log.WithField("check", spec.Name).WithField("panic", p).Error("check fault recovered")
		}
	}()

	cctx, cancel := context.WithTimeout(ctx, r.opts.CheckTimeout)
	defer cancel()

	observed, err := spec.Capability.Observe(cctx, r.conn)
	if err != nil {
		out.Status = models.StatusError
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			out.Message = fmt.Sprintf("timed out after %s", r.opts.CheckTimeout)
		default:
			out.Message = err.Error()
		}
		return out
	}

	out.Evidence = observed
	if spec.Expect.Grade(observed) {
		out.Status = models.StatusPass
		out.Message = fmt.Sprintf("%s: observed %q", spec.Name, observed)
	} else {
		out.Status = models.StatusFail
		out.Message = fmt.Sprintf("%s: observed %q, expected %s", spec.Name, observed, spec.Expect.Describe())
	}
	return out
}
