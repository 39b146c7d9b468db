package scenario

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/wndstack/internal/application/usecase"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

// Session is the window manager surface a scenario drives.
type Session interface {
	Open(ctx context.Context, id entity.WindowID, args entity.Args) (*entity.Window, error)
	Close(ctx context.Context, id entity.WindowID) error
	BackToRoot(ctx context.Context) error
	Reset(ctx context.Context, clearFollow bool)
	Snapshot() usecase.WindowsSnapshot
}

// SessionFactory creates a fresh, independent session.
type SessionFactory func(ctx context.Context) (Session, error)

// StepFailure describes one step that did not behave as written.
type StepFailure struct {
	Step   int
	Action string
	Reason string
}

func (f StepFailure) String() string {
	return fmt.Sprintf("step %d (%s): %s", f.Step, f.Action, f.Reason)
}

// Result is the outcome of one scenario run.
type Result struct {
	Name     string
	Path     string
	Steps    int
	Failures []StepFailure
	// Err is set when the scenario could not run at all.
	Err   error
	Final usecase.WindowsSnapshot
}

// Passed reports whether every step behaved as expected.
func (r Result) Passed() bool {
	return r.Err == nil && len(r.Failures) == 0
}

// Run replays sc against session. It keeps going after a failed step so one
// run reports every divergence.
func Run(ctx context.Context, sc *Scenario, session Session) Result {
	log := logging.FromContext(ctx).With().Str("scenario", sc.Name).Logger()
	ctx = logging.WithContext(ctx, log)

	result := Result{Name: sc.Name, Path: sc.Path}
	for i, step := range sc.Steps {
		if err := ctx.Err(); err != nil {
			result.Err = err
			break
		}
		result.Steps++
		for _, reason := range runStep(ctx, step, session) {
			failure := StepFailure{Step: i + 1, Action: step.Action(), Reason: reason}
			log.Warn().Int("step", failure.Step).Str("action", failure.Action).Msg(reason)
			result.Failures = append(result.Failures, failure)
		}
	}
	result.Final = session.Snapshot()

	log.Info().
		Int("steps", result.Steps).
		Int("failures", len(result.Failures)).
		Bool("passed", result.Passed()).
		Msg("scenario finished")
	return result
}

func runStep(ctx context.Context, step Step, session Session) []string {
	var reasons []string

	var err error
	switch {
	case step.Open != "":
		_, err = session.Open(ctx, entity.WindowID(step.Open), step.Args)
	case step.Close != "":
		err = session.Close(ctx, entity.WindowID(step.Close))
	case step.Back:
		err = session.BackToRoot(ctx)
	case step.Reset:
		session.Reset(ctx, step.ClearFollow)
	}
	if reason := checkError(step.Error, err); reason != "" {
		reasons = append(reasons, reason)
	}

	if step.Expect != nil {
		reasons = append(reasons, checkExpectation(*step.Expect, session.Snapshot())...)
	}
	return reasons
}

func checkError(want string, got error) string {
	if want == "" {
		if got != nil {
			return fmt.Sprintf("unexpected error: %v", got)
		}
		return ""
	}
	if got == nil {
		return fmt.Sprintf("expected %s error, got none", want)
	}
	if !errors.Is(got, errorKinds[want]) {
		return fmt.Sprintf("expected %s error, got: %v", want, got)
	}
	return ""
}

func checkExpectation(want Expectation, snap usecase.WindowsSnapshot) []string {
	var reasons []string
	compare := func(label string, want []string, got []entity.WindowID) {
		if want == nil {
			return
		}
		gotStr := make([]string, len(got))
		for i, id := range got {
			gotStr[i] = string(id)
		}
		if !slices.Equal(want, gotStr) {
			reasons = append(reasons, fmt.Sprintf("%s: want %v, got %v", label, want, gotStr))
		}
	}
	compare("shown", want.Shown, snap.ShownIDs())
	compare("cached", want.Cached, snap.CachedIDs())
	compare("stack", want.Stack, snap.StackIDs())
	compare("active", want.Active, snap.Active())
	return reasons
}

// RunAll replays every scenario in its own session, at most limit at a time
// (unbounded when limit <= 0). Results keep the input order.
func RunAll(ctx context.Context, scenarios []*Scenario, newSession SessionFactory, limit int) ([]Result, error) {
	results := make([]Result, len(scenarios))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			session, err := newSession(gctx)
			if err != nil {
				results[i] = Result{Name: sc.Name, Path: sc.Path, Err: err}
				return fmt.Errorf("scenario %s: %w", sc.Name, err)
			}
			results[i] = Run(gctx, sc, session)
			return nil
		})
	}
	err := g.Wait()
	return results, err
}
