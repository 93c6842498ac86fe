package live

import (
	"sync"

	"livecast/core/geo"

	"github.com/jonboulle/clockwork"
)

// ConnectionRecord describes one live page visit.
type ConnectionRecord struct {
	ID          int64  `json:"id"`
	IP          string `json:"ip"`
	ISP         string `json:"isp"`
	CountryCode string `json:"countryCode"`
	CountryName string `json:"countryName"`
}

// Registry is the in-memory record of viewers who loaded the live page.
// Identifiers derive from the millisecond clock and are strictly increasing.
type Registry struct {
	mu      sync.RWMutex
	clock   clockwork.Clock
	records map[int64]ConnectionRecord
	order   []int64
	lastID  int64
}

// NewRegistry creates an empty registry using clock for identifiers.
func NewRegistry(clock clockwork.Clock) *Registry {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Registry{
		clock:   clock,
		records: make(map[int64]ConnectionRecord),
	}
}

// Register stores a record for ip and returns it with its new identifier.
func (r *Registry) Register(ip string, info geo.Info) ConnectionRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.clock.Now().UnixMilli()
	// Same-millisecond registrations would collide
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	rec := ConnectionRecord{
		ID:          id,
		IP:          ip,
		ISP:         info.ISP,
		CountryCode: info.CountryCode,
		CountryName: info.CountryName,
	}
	r.records[id] = rec
	r.order = append(r.order, id)
	return rec
}

// Get returns the record with the given id.
func (r *Registry) Get(id int64) (ConnectionRecord, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	return rec, ok
}

// Remove evicts a record and reports whether it existed.
func (r *Registry) Remove(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return false
	}
	delete(r.records, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all records in insertion order. The slice is a copy.
func (r *Registry) List() []ConnectionRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]ConnectionRecord, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.records[id])
	}
	return out
}

// Len returns the number of records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}
