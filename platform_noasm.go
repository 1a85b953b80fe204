//go:build !(goexperiment.simd && amd64)

package memfill

import "encoding/binary"

// No wide-store kernel on this build.
var useBulkSet = false

// queryZeroFill reports the line-zero geometry word. Without a wide-store
// kernel the facility is prohibited regardless of cache geometry.
func queryZeroFill() uint32 {
	return zeroFillProhibited
}

// fillBulkSet is a stub; the dispatcher never selects it on this build.
func fillBulkSet(b []byte, v byte) {
	fillGeneric(b, v, caps)
}

// zeroLine zeroes exactly len(b) bytes, a multiple of 16, with 8-byte
// stores. The probe reports the facility unavailable on this build, so only
// callers holding a hand-built capability descriptor reach it.
func zeroLine(b []byte) {
	for i := 0; i+8 <= len(b); i += 8 {
		binary.NativeEndian.PutUint64(b[i:], 0)
	}
}
