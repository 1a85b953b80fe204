package memfill

// fillZero zeroes the rem bytes at b[off:] using the line-zero kernel for
// the line-aligned middle of the range. The caller has verified that the
// broadcast pattern is zero, rem > 63, the cursor at off is 16-byte aligned
// and c.zeroLine is set.
func fillZero(b []byte, off, rem int, c capability) {
	// Too short to amortize the alignment setup.
	if rem <= 127 {
		fillBulk(b, off, rem, 0)
		return
	}

	line := c.lineSize
	pre := (line - ((misalign(b, line) + off) & (line - 1))) & (line - 1)
	if rem-pre < line || rem-pre < minLineSize {
		fillBulk(b, off, rem, 0)
		return
	}

	// pre is a multiple of 16: the cursor is 16-byte aligned and line is
	// a power of two >= 64.
	for pre > 0 {
		storePair(b, off, 0)
		off += pairSize
		rem -= pairSize
		pre -= pairSize
	}

	for rem >= line {
		zeroLine(b[off : off+line])
		off += line
		rem -= line
	}

	fillTail(b, off, rem, 0)
}
