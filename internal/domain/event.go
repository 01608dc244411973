package domain

import (
	"errors"
	"strconv"
)

// ErrUnknownKind indicates an event type outside the five supported kinds.
var ErrUnknownKind = errors.New("unknown event type")

// ClientID identifies one account.
type ClientID uint16

func (id ClientID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// TransactionID identifies one transaction within a run.
type TransactionID uint32

func (id TransactionID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// EventKind names one of the five event types.
type EventKind string

// Constants for all supported event kinds.
const (
	KindDeposit    EventKind = "deposit"
	KindWithdrawal EventKind = "withdrawal"
	KindDispute    EventKind = "dispute"
	KindResolve    EventKind = "resolve"
	KindChargeback EventKind = "chargeback"
)

// SupportedKinds holds all the supported event kinds.
var SupportedKinds = []EventKind{
	KindDeposit,
	KindWithdrawal,
	KindDispute,
	KindResolve,
	KindChargeback,
}

// IsSupportedKind returns true if the event kind is supported.
func IsSupportedKind(kind string) bool {
	for _, k := range SupportedKinds {
		if string(k) == kind {
			return true
		}
	}

	return false
}

// RequiresAmount reports whether events of this kind carry an amount.
func (k EventKind) RequiresAmount() bool {
	return k == KindDeposit || k == KindWithdrawal
}

// Event is one parsed record of the transaction log.
//
// Amount is only meaningful for deposits and withdrawals.
type Event struct {
	Client ClientID
	Kind   EventKind
	TxID   TransactionID
	Amount Amount
}

// AccountState is the balance snapshot of one account.
type AccountState struct {
	Client    ClientID `json:"client"`
	Available Amount   `json:"available"`
	Held      Amount   `json:"held"`
	Total     Amount   `json:"total"`
	Locked    bool     `json:"locked"`
}
