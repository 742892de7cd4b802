package restaurant

import (
	"fmt"

	"github.com/kingrea/bistro/internal/order"
	"github.com/kingrea/bistro/internal/store"
)

// RestoreResult describes the outcome of Restore.
type RestoreResult struct {
	store.CheckResult
	Restored int
	Skipped  []int
}

// Records returns the persisted form of every active order, by table number.
func (b *OrderBook) Records() []order.Record {
	records := make([]order.Record, 0, len(b.active))
	for _, table := range b.OccupiedTables() {
		records = append(records, b.active[table].Record())
	}
	return records
}

// Persist writes every active order to path, replacing its contents.
func (b *OrderBook) Persist(path string) error {
	records := b.Records()
	if err := b.store.WriteJSON(path, records); err != nil {
		b.logError("Saving orders failed: %v", err)
		return fmt.Errorf("%w: persist %s: %w", ErrIOFailure, path, err)
	}
	b.logInfo("Orders saved · %d order(s) to %s", len(records), path)
	return nil
}

// Restore replaces the active orders with the ones stored at path.
//
// A missing or malformed file is logged and leaves the book untouched. On
// success every table is freed first and then the restored tables are
// occupied again, so the book mirrors the file exactly. Records naming a
// table outside the universe are skipped; when a table appears twice the
// later record wins.
func (b *OrderBook) Restore(path string) RestoreResult {
	var records []order.Record
	res := b.store.ReadJSON(path, &records)
	switch res.State {
	case store.StateReady:
	case store.StateMissing:
		b.logWarn("Orders file not found: %s", path)
		return RestoreResult{CheckResult: res}
	default:
		b.logWarn("Orders file unreadable: %v", res.Err)
		return RestoreResult{CheckResult: res}
	}

	active := make(map[int]*order.Order, len(records))
	var skipped []int
	for _, rec := range records {
		if !b.HasTable(rec.TableNumber) {
			skipped = append(skipped, rec.TableNumber)
			b.logWarn("Skipping stored order for unknown table %d", rec.TableNumber)
			continue
		}
		active[rec.TableNumber] = order.FromRecord(rec)
	}

	b.active = active
	b.available = make(map[int]struct{}, len(b.universe))
	for t := range b.universe {
		if _, occupied := active[t]; !occupied {
			b.available[t] = struct{}{}
		}
	}
	b.logInfo("Orders restored · %d order(s) from %s", len(active), path)
	return RestoreResult{CheckResult: res, Restored: len(active), Skipped: skipped}
}
