// Package errorspkg provides errors shared by the ledger front ends.
package errorspkg

import "errors"

var (
	// ErrInternal is reported to clients in place of errors they cannot act on.
	ErrInternal = errors.New("internal ledger error")
	// ErrCanceled is reported when a request ends before the ledger finished applying it.
	ErrCanceled = errors.New("request canceled before the ledger finished")
)
