// Package dispenser implements C13: a mutex-guarded work cursor
// handing out DM trial indices to worker goroutines.
package dispenser

import (
	"sync"

	"go.uber.org/zap"
)

// Dispenser hands out indices [0, N) to concurrent workers, one to a
// caller, under a single mutex. Reading/posting the cursor is O(1)
// and never fails once the Dispenser is constructed.
type Dispenser struct {
	mu     sync.Mutex
	cursor int
	total  int
	log    *zap.Logger

	lastReportAt int
	reportEvery  int
}

// New builds a Dispenser over total items. A nil logger disables
// progress reporting.
func New(total int, log *zap.Logger) *Dispenser {
	if log == nil {
		log = zap.NewNop()
	}

	reportEvery := total / 20
	if reportEvery < 1 {
		reportEvery = 1
	}

	return &Dispenser{total: total, log: log, reportEvery: reportEvery}
}

// Next returns the next DM trial index and advances the cursor, or -1
// once every index in [0, total) has been handed out.
func (d *Dispenser) Next() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cursor >= d.total {
		return -1
	}

	i := d.cursor
	d.cursor++

	if i-d.lastReportAt >= d.reportEvery || i == d.total-1 {
		d.lastReportAt = i
		d.log.Info("dispenser progress", zap.Int("cursor", i+1), zap.Int("total", d.total))
	}

	return i
}

// Total returns the total number of items this Dispenser was built
// over.
func (d *Dispenser) Total() int {
	return d.total
}
