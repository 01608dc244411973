// Package snapshotcsv writes account balance snapshots as CSV.
package snapshotcsv

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Header is the first row of every snapshot.
var Header = []string{"client", "available", "held", "total", "locked"}

// Write writes the header followed by one row per account state.
func Write(w io.Writer, states []domain.AccountState) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return err
	}

	for _, s := range states {
		row := []string{
			s.Client.String(),
			s.Available.String(),
			s.Held.String(),
			s.Total.String(),
			strconv.FormatBool(s.Locked),
		}

		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}
