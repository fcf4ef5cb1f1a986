package ecs

import "slices"

// IDPool hands out entity IDs, preferring the most recently released one.
//
// Every ID in [1, max] is either live or sitting in skip. Releasing the
// current max shrinks max back over any contiguous run of skipped IDs, so a
// world that empties out returns to max == 0.
type IDPool struct {
	max  EntityID
	skip []EntityID // LIFO
}

// NewIDPool returns an empty pool; the first Generate yields 1.
func NewIDPool() *IDPool {
	return &IDPool{}
}

// Generate returns the next free ID.
func (p *IDPool) Generate() EntityID {
	if n := len(p.skip); n > 0 {
		id := p.skip[n-1]
		p.skip = p.skip[:n-1]
		return id
	}
	p.max++
	return p.max
}

// Free returns id to the pool. Freeing NilEntity, an ID that was never
// issued, or an ID already released is a no-op.
func (p *IDPool) Free(id EntityID) {
	if id == NilEntity || id > p.max || slices.Contains(p.skip, id) {
		return
	}
	if id != p.max {
		p.skip = append(p.skip, id)
		return
	}
	p.max--
	for p.max > 0 {
		i := slices.Index(p.skip, p.max)
		if i < 0 {
			break
		}
		p.skip = slices.Delete(p.skip, i, i+1)
		p.max--
	}
}

// Max returns the highest ID currently accounted for by the pool.
func (p *IDPool) Max() EntityID { return p.max }

// Skipped returns a copy of the released-but-not-shrunk IDs, oldest first.
func (p *IDPool) Skipped() []EntityID {
	return slices.Clone(p.skip)
}

// Live reports whether id is currently issued.
func (p *IDPool) Live(id EntityID) bool {
	return id != NilEntity && id <= p.max && !slices.Contains(p.skip, id)
}
