package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mmynk/tripboard/internal/metrics"
	"github.com/mmynk/tripboard/internal/models"
)

// Action names, shared by the wire protocol and metrics.
const (
	ActionGetData       = "getData"
	ActionAddMember     = "addMember"
	ActionDeleteMember  = "deleteMember"
	ActionAddExpense    = "addExpense"
	ActionDeleteExpense = "deleteExpense"
)

// Session is a local view of a Remote ledger.
//
// Every mutation is applied to the local snapshot first and then mirrored to
// the remote. If the remote call fails the optimistic snapshot is discarded
// and the whole ledger is reloaded; there is no merge. Only one mutation runs
// at a time.
type Session struct {
	remote  Remote
	metrics *metrics.Metrics

	mu     sync.Mutex
	state  State
	loaded bool
}

// NewSession creates a Session. m may be nil.
func NewSession(remote Remote, m *metrics.Metrics) *Session {
	return &Session{remote: remote, metrics: m}
}

// Snapshot returns a copy of the current local state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Refresh replaces the local state with the remote one.
func (s *Session) Refresh(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reload(ctx); err != nil {
		return s.state.Clone(), err
	}
	return s.state.Clone(), nil
}

// Ensure loads the remote state once, then serves the local snapshot.
func (s *Session) Ensure(ctx context.Context) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.reload(ctx); err != nil {
			return State{}, err
		}
	}
	return s.state.Clone(), nil
}

// AddMember adds a trimmed name. Blank and duplicate names are a no-op.
func (s *Session) AddMember(ctx context.Context, name string) error {
	return s.mutate(ctx, ActionAddMember, func(st State) (State, bool) {
		return st.AddMember(name)
	}, func() error {
		return s.remote.AddMember(ctx, trimmed(name))
	})
}

// RemoveMember drops a member; their expenses stay.
func (s *Session) RemoveMember(ctx context.Context, name string) error {
	return s.mutate(ctx, ActionDeleteMember, func(st State) (State, bool) {
		return st.RemoveMember(name), true
	}, func() error {
		return s.remote.DeleteMember(ctx, name)
	})
}

// AddExpense validates and records e.
func (s *Session) AddExpense(ctx context.Context, e models.Expense) error {
	if err := Validate(e); err != nil {
		return err
	}
	return s.mutate(ctx, ActionAddExpense, func(st State) (State, bool) {
		return st.AddExpense(e), true
	}, func() error {
		return s.remote.AddExpense(ctx, e)
	})
}

// RemoveExpense deletes an expense by ID.
func (s *Session) RemoveExpense(ctx context.Context, id string) error {
	return s.mutate(ctx, ActionDeleteExpense, func(st State) (State, bool) {
		return st.RemoveExpense(id), true
	}, func() error {
		return s.remote.DeleteExpense(ctx, id)
	})
}

// Balances settles the current local state.
func (s *Session) Balances() []models.Balance {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Balances()
}

func (s *Session) mutate(ctx context.Context, action string, apply func(State) (State, bool), call func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := apply(s.state)
	if !changed {
		return nil
	}

	authoritative := s.state
	s.state = next

	if err := call(); err != nil {
		slog.Error("Ledger mutation failed, reloading", "action", action, "error", err)
		s.metrics.Mutation(action, metrics.OutcomeError)
		s.metrics.Resync()

		if rerr := s.reload(ctx); rerr != nil {
			slog.Error("Ledger reload failed", "error", rerr)
			s.state = authoritative
		}
		return err
	}

	s.metrics.Mutation(action, metrics.OutcomeOK)
	return nil
}

// reload must be called with mu held.
func (s *Session) reload(ctx context.Context) error {
	st, err := s.remote.Load(ctx)
	if err != nil {
		return err
	}
	s.state = st
	s.loaded = true
	slog.Debug("Ledger loaded", "members", len(st.Members), "expenses", len(st.Expenses))
	return nil
}
