// Package settlement coordinates multi-step money movements that span the
// wallet ledger and local persistence without a shared transaction.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Step is one remote or local action with an optional compensating action.
// Compensate must undo exactly what Apply did; nil means nothing to undo.
type Step struct {
	Name       string
	Apply      func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// StepError reports the step that failed during Run.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("%s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Saga applies steps in order and remembers what succeeded so it can be
// unwound in reverse. A Saga is single-use per command.
type Saga struct {
	name    string
	log     *zap.Logger
	mu      sync.Mutex
	applied []Step
}

func New(name string, log *zap.Logger) *Saga {
	if log == nil {
		log = zap.NewNop()
	}
	return &Saga{name: name, log: log}
}

// Run applies steps in order. When a step fails every step applied so far by
// this saga (including earlier Run calls) is compensated and a *StepError is returned.
func (s *Saga) Run(ctx context.Context, steps ...Step) error {
	for _, step := range steps {
		if err := step.Apply(ctx); err != nil {
			s.log.Warn("[settlement][saga] step failed; compensating",
				zap.String("saga", s.name), zap.String("step", step.Name), zap.Error(err))
			_ = s.Compensate(ctx)
			return &StepError{Step: step.Name, Err: err}
		}
		s.mu.Lock()
		s.applied = append(s.applied, step)
		s.mu.Unlock()
		s.log.Debug("[settlement][saga] step applied", zap.String("saga", s.name), zap.String("step", step.Name))
	}
	return nil
}

// Compensate undoes applied steps in reverse order and forgets them.
// It keeps going after a failed compensation; each failure is logged as an
// orphaned step needing manual reconciliation and all of them are returned joined.
func (s *Saga) Compensate(ctx context.Context) error {
	s.mu.Lock()
	applied := s.applied
	s.applied = nil
	s.mu.Unlock()

	// compensation must still run when the request context is already done
	ctx = context.WithoutCancel(ctx)

	var errs []error
	for i := len(applied) - 1; i >= 0; i-- {
		step := applied[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			s.log.Error("[settlement][saga] compensation failed; orphaned step",
				zap.String("saga", s.name), zap.String("step", step.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("compensate %s: %w", step.Name, err))
			continue
		}
		s.log.Info("[settlement][saga] step compensated", zap.String("saga", s.name), zap.String("step", step.Name))
	}
	return errors.Join(errs...)
}

// Applied returns the names of the steps currently recorded as applied.
func (s *Saga) Applied() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.applied))
	for _, st := range s.applied {
		names = append(names, st.Name)
	}
	return names
}
