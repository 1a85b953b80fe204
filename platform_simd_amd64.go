//go:build goexperiment.simd && amd64

package memfill

import "simd/archsimd"

// useBulkSet gates the fully accelerated fill path.
// archsimd 256-bit stores on AMD64 require AVX2.
var useBulkSet = archsimd.X86.AVX2()

// queryZeroFill reports the line-zero geometry word. The kernel uses
// 128-bit stores, which require AVX.
func queryZeroFill() uint32 {
	if !archsimd.X86.AVX() {
		return zeroFillProhibited
	}
	return cacheLineGeometry()
}

// zeroLine zeroes exactly len(b) bytes, a multiple of 16.
func zeroLine(b []byte) {
	z := archsimd.BroadcastUint8x16(0)
	for i := 0; i+16 <= len(b); i += 16 {
		z.StoreSlice(b[i:])
	}
}

// fillBulkSet is the accelerated fill in three phases: a prologue covering
// short sizes and the unaligned head, a main phase of two 32-byte stores
// per iteration, and an epilogue store anchored at the end of the range.
// The epilogue may overlap bytes the main phase already wrote with the same
// value; no store extends outside b.
func fillBulkSet(b []byte, v byte) {
	n := len(b)
	if n <= smallMax {
		fillSmall(b, broadcast64(v))
		return
	}
	if n < 32 {
		pat := broadcast64(v)
		storePair(b, 0, pat)
		storePair(b, n-pairSize, pat)
		return
	}

	w := archsimd.BroadcastUint8x32(v)
	w.StoreSlice(b)
	if n <= 64 {
		w.StoreSlice(b[n-32:])
		return
	}

	// The prologue store covered the first 32 bytes; continue from the
	// next 32-byte boundary.
	off := 32 - misalign(b, 32)
	rem := n - off
	for rem >= 64 {
		w.StoreSlice(b[off:])
		w.StoreSlice(b[off+32:])
		off += 64
		rem -= 64
	}
	if rem > 32 {
		w.StoreSlice(b[off:])
	}
	if rem > 0 {
		w.StoreSlice(b[n-32:])
	}
}
