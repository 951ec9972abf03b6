package capability

import "sync/atomic"

// Slot guards one logical request slot (a search box, a category filter)
// against stale responses. Each new request takes a token from Begin; before
// applying a result the caller checks Stale. A later request supersedes any
// earlier in-flight one, so an old response can never overwrite newer state.
type Slot struct {
	seq atomic.Int64
}

// Begin registers a new request and returns its token.
func (s *Slot) Begin() int64 {
	return s.seq.Add(1)
}

// Stale reports whether the token has been superseded by a newer request.
func (s *Slot) Stale(token int64) bool {
	return s.seq.Load() != token
}
