package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/etnz/cryptofolio"
)

// DefaultInterval is the refresh period of the live price feed.
const DefaultInterval = 6 * time.Second

// PriceFetcher is the single call the feed needs from the api client.
type PriceFetcher interface {
	CurrentPrices(ctx context.Context) (cryptofolio.Snapshot, error)
}

// PriceFeed polls the backend for the current prices on a fixed interval
// and keeps the latest snapshot. A failed poll keeps the previous
// snapshot and records a warning: stale data is preferred over no data.
//
// The feed is an explicitly cancellable task: Start returns a stop
// function and the owning view must call it on teardown, no timer may
// outlive its view. Poll is exposed separately so tests can step the feed
// deterministically.
type PriceFeed struct {
	fetch    PriceFetcher
	interval time.Duration

	mu          sync.Mutex
	snap        cryptofolio.Snapshot
	lastUpdated time.Time
	warning     string

	updates chan struct{}
}

// NewPriceFeed creates a feed over the fetcher. A non-positive interval
// falls back to DefaultInterval.
func NewPriceFeed(fetch PriceFetcher, interval time.Duration) *PriceFeed {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &PriceFeed{
		fetch:    fetch,
		interval: interval,
		snap:     cryptofolio.Snapshot{},
		updates:  make(chan struct{}, 1),
	}
}

// Poll performs one refresh. On success the snapshot is replaced
// wholesale and the timestamp moves; on failure both are preserved and a
// warning is set until the next successful poll.
func (p *PriceFeed) Poll(ctx context.Context) {
	snap, err := p.fetch.CurrentPrices(ctx)

	p.mu.Lock()
	if err != nil {
		p.warning = "failed to fetch prices: " + err.Error()
	} else {
		p.snap = snap
		p.lastUpdated = time.Now()
		p.warning = ""
	}
	p.mu.Unlock()

	// non-blocking: a slow consumer only coalesces ticks
	select {
	case p.updates <- struct{}{}:
	default:
	}
}

// Start polls immediately, then on every interval tick, until the
// returned stop function is called or the context is cancelled. Stop is
// idempotent.
func (p *PriceFeed) Start(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		p.Poll(ctx)
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				p.Poll(ctx)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			<-done
		})
	}
}

// Updates notifies after every poll, successful or not. Ticks are
// coalesced, never queued.
func (p *PriceFeed) Updates() <-chan struct{} { return p.updates }

// Snapshot returns the latest snapshot. It may be stale or empty, the
// consumer must tolerate holdings rendered against missing quotes.
func (p *PriceFeed) Snapshot() cryptofolio.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snap
}

// LastUpdated returns when the snapshot was last refreshed, and false
// when no poll succeeded yet.
func (p *PriceFeed) LastUpdated() (time.Time, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastUpdated, !p.lastUpdated.IsZero()
}

// Warning returns the message of the last failed poll, or "" when the
// last poll succeeded. A warning is a degradation, not a failure: the
// previous snapshot stays on display.
func (p *PriceFeed) Warning() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.warning
}
