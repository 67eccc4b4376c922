package dataset

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"cognigraph/internal/graph"
)

// Snapshot is one fully built, immutable data epoch: the index, the
// validation report that produced it, and identifying metadata.
type Snapshot struct {
	Version  string        `json:"version"`
	Checksum string        `json:"checksum,omitempty"`
	LoadedAt time.Time     `json:"loaded_at"`
	Index    *graph.Index  `json:"-"`
	Report   *graph.Report `json:"report"`
}

// Publisher owns the currently published snapshot. Reload builds the new
// index fully off to the side and publishes it with a single pointer swap, so
// in-flight readers always see a consistent old-or-new epoch, never a partial
// one.
type Publisher struct {
	cur atomic.Pointer[Snapshot]
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

// Current returns the published snapshot, or nil before the first load.
func (p *Publisher) Current() *Snapshot {
	return p.cur.Load()
}

// Publish ingests the rows and swaps the result in atomically. The returned
// snapshot is the one readers will now observe.
func (p *Publisher) Publish(rows []graph.Row, checksum string) *Snapshot {
	ix, report := graph.Ingest(rows)
	snap := &Snapshot{
		Version:  uuid.NewString(),
		Checksum: checksum,
		LoadedAt: time.Now().UTC(),
		Index:    ix,
		Report:   report,
	}
	p.cur.Store(snap)
	return snap
}
