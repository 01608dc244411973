// Package ledgerservice manages business logic layer of the ledger.
package ledgerservice

import (
	"context"
	"io"
	"sync"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/engine"
	"github.com/go-petr/pet-ledger/internal/eventcsv"
)

// Service serializes access to one engine.
//
// Every call holds the lock for its whole duration, so events are applied
// one at a time in the order the calls acquire it.
type Service struct {
	mu     sync.Mutex
	engine *engine.Engine
	opts   engine.Options
}

// New returns ledger service struct to manage ledger business logic.
func New(e *engine.Engine, opts engine.Options) *Service {
	return &Service{engine: e, opts: opts}
}

// Apply applies one event and returns the resulting state of its account.
func (s *Service) Apply(ctx context.Context, ev domain.Event) (domain.AccountState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.Apply(ctx, ev); err != nil {
		return domain.AccountState{}, err
	}

	return s.engine.Account(ev.Client).State(), nil
}

// Replay applies every event of a CSV transaction log in order.
func (s *Service) Replay(ctx context.Context, r io.Reader) (engine.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Replay(ctx, eventcsv.NewReader(r), s.opts)
}

// Get returns the state of the client's account.
func (s *Service) Get(ctx context.Context, client domain.ClientID) (domain.AccountState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.engine.Lookup(client)
	if !ok {
		return domain.AccountState{}, domain.ErrAccountNotFound
	}

	return a.State(), nil
}

// List returns the state of every known account.
func (s *Service) List(ctx context.Context) []domain.AccountState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Snapshot()
}
