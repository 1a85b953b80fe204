// Package memfill implements a bulk memory fill primitive: setting every
// byte of a slice to a single value. It is correct for every size and
// alignment, approaches peak memory bandwidth for large fills, and routes
// large zero fills through hardware wide-store support detected once at
// startup.
package memfill

// fillImpl is the strategy resolved exactly once, before first use, from
// the capability descriptor. Calls go straight through it with no further
// capability checks.
var fillImpl = selectStrategy(caps)

func selectStrategy(c capability) func([]byte, byte) {
	if c.bulkSet {
		return fillBulkSet
	}
	return func(b []byte, v byte) { fillGeneric(b, v, c) }
}

// fill is the single implementation behind every public entry point.
func fill(b []byte, v byte) {
	if len(b) == 0 {
		return
	}
	fillImpl(b, v)
}

// Fill sets every byte of dst to v and returns dst.
//
// Fill performs no allocation, takes no locks and never blocks; concurrent
// calls on disjoint slices need no coordination. The result of concurrent
// calls on overlapping slices is unspecified, but no call ever writes
// outside its own dst.
func Fill(dst []byte, v byte) []byte {
	fill(dst, v)
	return dst
}

// Zero sets every byte of dst to zero and returns dst. Large zero fills
// take the cache-line-zero path when the platform supports it.
func Zero(dst []byte) []byte {
	fill(dst, 0)
	return dst
}
