package memfill

import (
	"encoding/binary"
	"unsafe"
)

const (
	smallMax  = 15 // largest size covered by the bit-selected store chain
	pairSize  = 16 // one store pair: two adjacent 8-byte stores
	bulkChunk = 64 // bytes written per bulk loop iteration
)

// broadcast64 replicates v into every byte lane of a 64-bit pattern.
func broadcast64(v byte) uint64 {
	return uint64(v) * 0x0101010101010101
}

// storePair writes a 16-byte store pair of pat at b[off:].
func storePair(b []byte, off int, pat uint64) {
	binary.NativeEndian.PutUint64(b[off:], pat)
	binary.NativeEndian.PutUint64(b[off+8:], pat)
}

// misalign reports how far the first byte of b sits past an align-byte
// boundary. align must be a power of two.
func misalign(b []byte, align int) int {
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(b))) & uintptr(align-1))
}

// fillSmall covers 0 to 15 bytes with a descending chain of 8/4/2/1-byte
// stores selected by the bits of len(b). Every store writes lanes of the
// same broadcast pattern and none extends past len(b).
func fillSmall(b []byte, pat uint64) {
	n := len(b)
	i := 0
	if n&8 != 0 {
		binary.NativeEndian.PutUint64(b[i:], pat)
		i += 8
	}
	if n&4 != 0 {
		binary.NativeEndian.PutUint32(b[i:], uint32(pat))
		i += 4
	}
	if n&2 != 0 {
		binary.NativeEndian.PutUint16(b[i:], uint16(pat))
		i += 2
	}
	if n&1 != 0 {
		b[i] = byte(pat)
	}
}

// fillTail covers the remaining rem < 64 bytes at b[off:] with store pairs.
// When fewer than 16 bytes remain the final pair is anchored at len(b)-16
// instead of the cursor: it overlaps already-written bytes with the same
// value rather than shifting stores by the odd remainder. The caller
// guarantees len(b) > 15, so the anchored pair never reaches before b[0].
func fillTail(b []byte, off, rem int, pat uint64) {
	for rem > pairSize {
		storePair(b, off, pat)
		off += pairSize
		rem -= pairSize
	}
	if rem > 0 {
		storePair(b, len(b)-pairSize, pat)
	}
}

// fillBulk covers rem bytes at b[off:] with four store pairs per iteration,
// handing what is left to fillTail. The caller guarantees len(b) > 15 and
// off+rem == len(b).
func fillBulk(b []byte, off, rem int, pat uint64) {
	for rem >= bulkChunk {
		storePair(b, off, pat)
		storePair(b, off+16, pat)
		storePair(b, off+32, pat)
		storePair(b, off+48, pat)
		off += bulkChunk
		rem -= bulkChunk
	}
	fillTail(b, off, rem, pat)
}

// fillGeneric is the portable fill, correct for every size and alignment.
// The capability descriptor gates the hand-off of large zero fills to the
// line-zero kernel.
func fillGeneric(b []byte, v byte, c capability) {
	n := len(b)
	pat := broadcast64(v)
	if n <= smallMax {
		fillSmall(b, pat)
		return
	}

	off := 0
	if mis := misalign(b, pairSize); mis != 0 {
		// One unaligned pair at the start, then step the cursor to the
		// next 16-byte boundary without reissuing the store. n > 15
		// guarantees the pair fits.
		storePair(b, 0, pat)
		off = pairSize - mis
	}
	rem := n - off

	if pat == 0 && rem > 63 && c.zeroLine {
		fillZero(b, off, rem, c)
		return
	}
	fillBulk(b, off, rem, pat)
}
