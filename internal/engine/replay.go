package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/eventcsv"
	"github.com/go-petr/pet-ledger/internal/snapshotcsv"
)

// EventSource yields events in arrival order and io.EOF when exhausted.
// Records that cannot be parsed are reported as *eventcsv.ParseError.
type EventSource interface {
	Read() (domain.Event, error)
}

// Options tunes a replay.
type Options struct {
	// Strict makes the first unparseable record abort the replay.
	Strict bool
}

// Stats counts what happened to the records of a replay.
type Stats struct {
	Applied  int `json:"applied"`
	Rejected int `json:"rejected"`
	Skipped  int `json:"skipped"`
}

// Replay applies every event of src in order.
//
// Rejected events and, unless opts.Strict is set, unparseable records are
// counted and logged. Any other read error aborts the replay.
func (e *Engine) Replay(ctx context.Context, src EventSource, opts Options) (Stats, error) {
	l := zerolog.Ctx(ctx)

	var stats Stats

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		ev, err := src.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var pe *eventcsv.ParseError
			if !errors.As(err, &pe) || opts.Strict {
				return stats, fmt.Errorf("read events: %w", err)
			}

			l.Warn().Err(err).Int("line", pe.Line).Msg("skipping record")
			stats.Skipped++

			continue
		}

		if err := e.Apply(ctx, ev); err != nil {
			stats.Rejected++
			continue
		}

		stats.Applied++
	}

	l.Info().
		Int("applied", stats.Applied).
		Int("rejected", stats.Rejected).
		Int("skipped", stats.Skipped).
		Int("accounts", e.Len()).
		Msg("replay finished")

	return stats, nil
}

// Run replays the CSV transaction log read from r on a fresh engine and
// writes the final balances to w as CSV.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) (Stats, error) {
	e := New()

	stats, err := e.Replay(ctx, eventcsv.NewReader(r), opts)
	if err != nil {
		return stats, err
	}

	if err := snapshotcsv.Write(w, e.Snapshot()); err != nil {
		return stats, fmt.Errorf("write snapshot: %w", err)
	}

	return stats, nil
}
