// Package domain provides definitions of all ledger entities.
package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound indicates that no event has referenced the client yet.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountLocked indicates that the account was frozen by a chargeback.
	ErrAccountLocked = errors.New("account is locked")
	// ErrInsufficientFunds indicates that available funds do not cover a withdrawal.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrDuplicateTransactionID indicates that a deposit reuses a known transaction id.
	ErrDuplicateTransactionID = errors.New("transaction id has already been used")
	// ErrDepositDoesNotExist indicates that the referenced deposit is unknown to the account.
	ErrDepositDoesNotExist = errors.New("deposit does not exist")
	// ErrDepositAlreadyDisputed indicates a dispute on a deposit that is already disputed.
	ErrDepositAlreadyDisputed = errors.New("deposit is already disputed")
	// ErrDepositNotDisputed indicates a resolve or chargeback on an undisputed deposit.
	ErrDepositNotDisputed = errors.New("deposit is not currently disputed")
	// ErrDepositAlreadyReversed indicates any transition out of a charged back deposit.
	ErrDepositAlreadyReversed = errors.New("deposit has already been reversed")
)

// OpError reports an account operation that was rejected.
//
// The account is left exactly as it was before the call. Kind is one of the
// sentinel errors above and is what errors.Is matches against.
type OpError struct {
	Op     EventKind
	Client ClientID
	TxID   TransactionID
	Kind   error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s client=%d tx=%d: %v", e.Op, e.Client, e.TxID, e.Kind)
}

func (e *OpError) Unwrap() error {
	return e.Kind
}
