package memfill

import (
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// capability is the one-time result of hardware feature detection. It is
// computed during package initialization and never mutated afterwards, so
// unsynchronized concurrent reads are safe.
type capability struct {
	bulkSet  bool // wide-store kernel usable for every fill
	zeroLine bool // line-zero kernel usable for large zero fills
	lineSize int  // power of two, >= minLineSize
}

const (
	// lineBase is the unit of the geometry exponent field: a line spans
	// lineBase << field bytes.
	lineBase = 4

	// minLineSize is the smallest line worth routing through the
	// line-zero kernel; anything below degrades to the generic bulk loop.
	minLineSize = 64

	// maxLineSize bounds the decoded geometry; larger encodings are
	// reserved.
	maxLineSize = 64 * 1024

	zeroFillProhibited = 1 << 4 // geometry word flag: line zeroing disallowed
	zeroFillExpMask    = 0xf    // geometry word low bits: line size exponent
)

// decodeZeroFill turns a raw geometry word into the line-zero portion of the
// capability descriptor. Prohibited, undersized or reserved encodings degrade
// to "unavailable" rather than failing; lineSize stays pinned to minLineSize
// so alignment arithmetic downstream remains well-defined.
func decodeZeroFill(raw uint32) (lineSize int, ok bool) {
	size := lineBase << (raw & zeroFillExpMask)
	if raw&zeroFillProhibited != 0 || size < minLineSize || size > maxLineSize {
		return minLineSize, false
	}
	return size, true
}

// cacheLineGeometry packs the host cache-line size into a geometry word.
// CacheLinePad has size zero on platforms where the line size is unknown;
// the 64-byte floor keeps the encoding in range.
func cacheLineGeometry() uint32 {
	size := int(unsafe.Sizeof(cpu.CacheLinePad{}))
	if size < minLineSize {
		size = minLineSize
	}
	return uint32(bits.TrailingZeros(uint(size/lineBase))) & zeroFillExpMask
}

// caps is the process-wide capability descriptor, resolved exactly once
// before first use. Package initialization is the one-shot barrier: no
// caller can observe it unwritten.
var caps = probe()

func probe() capability {
	var c capability
	c.lineSize, c.zeroLine = decodeZeroFill(queryZeroFill())
	c.bulkSet = useBulkSet
	return c
}
