// Package engine routes transaction events to per-client accounts and
// reports their final balances.
package engine

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/account"
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Engine owns every account seen during a run.
//
// Engine is not safe for concurrent use; events must be applied in arrival order.
type Engine struct {
	accounts map[domain.ClientID]*account.Account
}

// New returns an engine without accounts.
func New() *Engine {
	return &Engine{accounts: make(map[domain.ClientID]*account.Account)}
}

// Account returns the account of client, creating it on first reference.
func (e *Engine) Account(client domain.ClientID) *account.Account {
	a, ok := e.accounts[client]
	if !ok {
		a = account.New(client)
		e.accounts[client] = a
	}

	return a
}

// Lookup returns the account of client without creating it.
func (e *Engine) Lookup(client domain.ClientID) (*account.Account, bool) {
	a, ok := e.accounts[client]
	return a, ok
}

// Len returns the number of known accounts.
func (e *Engine) Len() int {
	return len(e.accounts)
}

// Apply applies one event to the account it belongs to.
//
// A rejected event is logged at debug level and returned; it never affects
// other accounts or later events.
func (e *Engine) Apply(ctx context.Context, ev domain.Event) error {
	err := e.Account(ev.Client).Apply(ev)
	if err != nil {
		zerolog.Ctx(ctx).Debug().
			Err(err).
			Str("type", string(ev.Kind)).
			Uint16("client", uint16(ev.Client)).
			Uint32("tx", uint32(ev.TxID)).
			Msg("event rejected")
	}

	return err
}

// Snapshot returns the state of every account ordered by client id.
// Callers must not rely on the ordering.
func (e *Engine) Snapshot() []domain.AccountState {
	states := make([]domain.AccountState, 0, len(e.accounts))

	for _, a := range e.accounts {
		states = append(states, a.State())
	}

	sort.Slice(states, func(i, j int) bool {
		return states[i].Client < states[j].Client
	})

	return states
}
