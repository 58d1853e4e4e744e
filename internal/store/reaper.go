package store

import "time"

// ReapInterval is the reaper's fixed tick cadence. The teacher's own
// ActiveExpire ticks every 100ms; the source this spec was distilled from
// (and spec.md itself) fixes the cadence at one second, so that's what's
// used here.
const ReapInterval = 1 * time.Second

// RunReaper runs the background reaper loop until stop is closed. It is a
// pure memory-reclamation optimization: readers already treat an expired
// key as absent on their own (I2), so the reaper only exists to keep the
// map from retaining dead entries indefinitely between reads.
//
// Each tick: (a) under a read lock, snapshot the keys whose deadline has
// passed; (b) under a write lock, remove each snapshotted key, but only
// after re-checking its deadline is still past — a concurrent SET may have
// extended or cleared it since the snapshot was taken.
func (s *Store) RunReaper(stop <-chan struct{}) {
	ticker := time.NewTicker(ReapInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.reapOnce()
		}
	}
}

func (s *Store) reapOnce() {
	now := time.Now()

	s.mu.RLock()
	candidates := make([]string, 0)
	for k, e := range s.entries {
		if e.expired(now) {
			candidates = append(candidates, k)
		}
	}
	s.mu.RUnlock()

	if len(candidates) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	recheck := time.Now()
	for _, k := range candidates {
		if e, ok := s.entries[k]; ok && e.expired(recheck) {
			delete(s.entries, k)
		}
	}
}
