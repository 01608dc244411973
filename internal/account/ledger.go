package account

import "github.com/go-petr/pet-ledger/internal/domain"

// DepositState is the dispute state of one accepted deposit.
//
//	MaybeSettled --dispute--> Disputed --resolve--> MaybeSettled
//	Disputed --chargeback--> Reversed
//
// Reversed is terminal.
type DepositState uint8

// Deposit states.
const (
	MaybeSettled DepositState = iota
	Disputed
	Reversed
)

func (s DepositState) String() string {
	switch s {
	case MaybeSettled:
		return "maybe_settled"
	case Disputed:
		return "disputed"
	case Reversed:
		return "reversed"
	default:
		return "unknown"
	}
}

type deposit struct {
	amount domain.Amount
	state  DepositState
}

// DepositLedger tracks the dispute state of every deposit accepted by one account.
//
// The zero value is an empty ledger ready to use. Errors returned by the
// ledger are the bare domain kinds; Account attaches the operation context.
type DepositLedger struct {
	deposits map[domain.TransactionID]*deposit
}

// Len returns the number of deposits ever recorded, reversed ones included.
func (l *DepositLedger) Len() int {
	return len(l.deposits)
}

// State returns the state of the deposit and whether it exists.
func (l *DepositLedger) State(tx domain.TransactionID) (DepositState, bool) {
	d, ok := l.deposits[tx]
	if !ok {
		return 0, false
	}

	return d.state, true
}

// Insert records a new deposit in the MaybeSettled state.
// Transaction ids are never reused, not even after a chargeback.
func (l *DepositLedger) Insert(tx domain.TransactionID, amount domain.Amount) error {
	if _, ok := l.deposits[tx]; ok {
		return domain.ErrDuplicateTransactionID
	}

	if l.deposits == nil {
		l.deposits = make(map[domain.TransactionID]*deposit)
	}

	l.deposits[tx] = &deposit{amount: amount, state: MaybeSettled}

	return nil
}

// Dispute moves a settled deposit to Disputed and returns its amount.
func (l *DepositLedger) Dispute(tx domain.TransactionID) (domain.Amount, error) {
	d, ok := l.deposits[tx]
	if !ok {
		return domain.Amount{}, domain.ErrDepositDoesNotExist
	}

	switch d.state {
	case Disputed:
		return domain.Amount{}, domain.ErrDepositAlreadyDisputed
	case Reversed:
		return domain.Amount{}, domain.ErrDepositAlreadyReversed
	}

	d.state = Disputed

	return d.amount, nil
}

// Resolve moves a disputed deposit back to MaybeSettled and returns its amount.
func (l *DepositLedger) Resolve(tx domain.TransactionID) (domain.Amount, error) {
	d, err := l.disputed(tx)
	if err != nil {
		return domain.Amount{}, err
	}

	d.state = MaybeSettled

	return d.amount, nil
}

// Chargeback moves a disputed deposit to Reversed and returns its amount.
func (l *DepositLedger) Chargeback(tx domain.TransactionID) (domain.Amount, error) {
	d, err := l.disputed(tx)
	if err != nil {
		return domain.Amount{}, err
	}

	d.state = Reversed

	return d.amount, nil
}

func (l *DepositLedger) disputed(tx domain.TransactionID) (*deposit, error) {
	d, ok := l.deposits[tx]
	if !ok {
		return nil, domain.ErrDepositDoesNotExist
	}

	switch d.state {
	case MaybeSettled:
		return nil, domain.ErrDepositNotDisputed
	case Reversed:
		return nil, domain.ErrDepositAlreadyReversed
	}

	return d, nil
}
