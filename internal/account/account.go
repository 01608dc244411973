// Package account implements the per-client ledger: balances, the lock flag
// and the dispute lifecycle of every deposit.
package account

import (
	"github.com/go-petr/pet-ledger/internal/domain"
)

// Account holds the available and held funds of one client.
//
// Every rejected operation returns a *domain.OpError and leaves the account
// untouched. Once locked, an account stays locked and refuses deposits and
// withdrawals.
type Account struct {
	client    domain.ClientID
	available domain.Amount
	held      domain.Amount
	locked    bool
	deposits  DepositLedger
}

// New returns an empty, unlocked account for the client.
func New(client domain.ClientID) *Account {
	return &Account{client: client}
}

// Client returns the account owner.
func (a *Account) Client() domain.ClientID { return a.client }

// Available returns the funds that can be withdrawn.
func (a *Account) Available() domain.Amount { return a.available }

// Held returns the funds frozen by open disputes.
func (a *Account) Held() domain.Amount { return a.held }

// Total returns available + held.
func (a *Account) Total() domain.Amount { return a.available.Add(a.held) }

// Locked reports whether a chargeback has frozen the account.
func (a *Account) Locked() bool { return a.locked }

// Deposits exposes the read-only side of the deposit ledger.
func (a *Account) Deposits() *DepositLedger { return &a.deposits }

// State returns the balance snapshot of the account.
func (a *Account) State() domain.AccountState {
	return domain.AccountState{
		Client:    a.client,
		Available: a.available,
		Held:      a.held,
		Total:     a.Total(),
		Locked:    a.locked,
	}
}

// Deposit credits amount to available funds and records tx for later disputes.
func (a *Account) Deposit(tx domain.TransactionID, amount domain.Amount) error {
	if a.locked {
		return a.fail(domain.KindDeposit, tx, domain.ErrAccountLocked)
	}

	if err := a.deposits.Insert(tx, amount); err != nil {
		return a.fail(domain.KindDeposit, tx, err)
	}

	a.available = a.available.Add(amount)

	return nil
}

// Withdraw debits amount from available funds.
//
// Withdrawals are not recorded; tx is only used to report a rejection.
func (a *Account) Withdraw(tx domain.TransactionID, amount domain.Amount) error {
	if a.locked {
		return a.fail(domain.KindWithdrawal, tx, domain.ErrAccountLocked)
	}

	if a.available.LessThan(amount) {
		return a.fail(domain.KindWithdrawal, tx, domain.ErrInsufficientFunds)
	}

	a.available = a.available.Sub(amount)

	return nil
}

// Dispute moves the amount of deposit tx from available to held funds.
// Like Resolve and Chargeback it is not gated on the lock flag, so a
// reversed deposit always reports ErrDepositAlreadyReversed.
func (a *Account) Dispute(tx domain.TransactionID) error {
	amount, err := a.deposits.Dispute(tx)
	if err != nil {
		return a.fail(domain.KindDispute, tx, err)
	}

	a.available = a.available.Sub(amount)
	a.held = a.held.Add(amount)

	return nil
}

// Resolve releases the hold on deposit tx back into available funds.
// It is not gated on the lock flag.
func (a *Account) Resolve(tx domain.TransactionID) error {
	amount, err := a.deposits.Resolve(tx)
	if err != nil {
		return a.fail(domain.KindResolve, tx, err)
	}

	a.held = a.held.Sub(amount)
	a.available = a.available.Add(amount)

	return nil
}

// Chargeback removes the held amount of deposit tx for good and locks the account.
// It is not gated on the lock flag.
func (a *Account) Chargeback(tx domain.TransactionID) error {
	amount, err := a.deposits.Chargeback(tx)
	if err != nil {
		return a.fail(domain.KindChargeback, tx, err)
	}

	a.held = a.held.Sub(amount)
	a.locked = true

	return nil
}

// Apply dispatches the event to the matching operation.
func (a *Account) Apply(e domain.Event) error {
	switch e.Kind {
	case domain.KindDeposit:
		return a.Deposit(e.TxID, e.Amount)
	case domain.KindWithdrawal:
		return a.Withdraw(e.TxID, e.Amount)
	case domain.KindDispute:
		return a.Dispute(e.TxID)
	case domain.KindResolve:
		return a.Resolve(e.TxID)
	case domain.KindChargeback:
		return a.Chargeback(e.TxID)
	default:
		return domain.ErrUnknownKind
	}
}

func (a *Account) fail(op domain.EventKind, tx domain.TransactionID, kind error) error {
	return &domain.OpError{Op: op, Client: a.client, TxID: tx, Kind: kind}
}
