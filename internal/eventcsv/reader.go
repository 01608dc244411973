// Package eventcsv reads the transaction log CSV into domain events.
package eventcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-petr/pet-ledger/internal/domain"
)

var (
	// ErrMissingField indicates that a required column is absent or empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidClientID indicates a client column that is not a 16-bit unsigned integer.
	ErrInvalidClientID = errors.New("invalid client id")
	// ErrInvalidTransactionID indicates a tx column that is not a 32-bit unsigned integer.
	ErrInvalidTransactionID = errors.New("invalid transaction id")
)

// Column names of the input header.
const (
	FieldType   = "type"
	FieldClient = "client"
	FieldTx     = "tx"
	FieldAmount = "amount"
)

// ParseError reports a record that could not be turned into an event.
// The stream itself is still readable after a ParseError.
type ParseError struct {
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	msg := e.Field + ": " + e.Err.Error()
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}

	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Reader streams events out of a CSV transaction log.
//
// The first record is the header and is skipped. Fields are trimmed and a
// record may omit the amount column.
type Reader struct {
	csv        *csv.Reader
	headerDone bool
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return &Reader{csv: cr}
}

// Read returns the next event.
//
// It returns io.EOF at the end of the stream, a *ParseError for a record
// that does not describe a valid event, and any other error when the
// stream itself is malformed.
func (r *Reader) Read() (domain.Event, error) {
	for {
		record, err := r.csv.Read()
		if err != nil {
			return domain.Event{}, err
		}

		if blank(record) {
			continue
		}

		if !r.headerDone {
			r.headerDone = true
			continue
		}

		line, _ := r.csv.FieldPos(0)

		event, err := ParseRecord(record)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = line
			}

			return domain.Event{}, err
		}

		return event, nil
	}
}

// ParseRecord converts the fields of one record into an event.
// The amount column is ignored for dispute, resolve and chargeback.
func ParseRecord(record []string) (domain.Event, error) {
	field := func(i int) string {
		if i >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[i])
	}

	kind := field(0)
	if kind == "" {
		return domain.Event{}, &ParseError{Field: FieldType, Err: ErrMissingField}
	}

	if !domain.IsSupportedKind(kind) {
		return domain.Event{}, &ParseError{Field: FieldType, Value: kind, Err: domain.ErrUnknownKind}
	}

	client, err := parseUint(field(1), FieldClient, 16, ErrInvalidClientID)
	if err != nil {
		return domain.Event{}, err
	}

	tx, err := parseUint(field(2), FieldTx, 32, ErrInvalidTransactionID)
	if err != nil {
		return domain.Event{}, err
	}

	e := domain.Event{
		Client: domain.ClientID(client),
		Kind:   domain.EventKind(kind),
		TxID:   domain.TransactionID(tx),
	}

	if !e.Kind.RequiresAmount() {
		return e, nil
	}

	raw := field(3)
	if raw == "" {
		return domain.Event{}, &ParseError{Field: FieldAmount, Err: ErrMissingField}
	}

	e.Amount, err = domain.ParseAmount(raw)
	if err != nil {
		return domain.Event{}, &ParseError{Field: FieldAmount, Value: raw, Err: err}
	}

	return e, nil
}

func parseUint(raw, name string, bits int, kind error) (uint64, error) {
	if raw == "" {
		return 0, &ParseError{Field: name, Err: ErrMissingField}
	}

	v, err := strconv.ParseUint(raw, 10, bits)
	if err != nil {
		return 0, &ParseError{Field: name, Value: raw, Err: kind}
	}

	return v, nil
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}

	return true
}
