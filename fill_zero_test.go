package memfill

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// The accelerated zero path and the generic bulk loop are independent
// implementations; they must be byte-for-byte interchangeable. The hand-built
// capability descriptors force each path regardless of what the probe found
// on the host.
func TestZeroPathEquivalence(t *testing.T) {
	generic := capability{lineSize: minLineSize}

	for _, line := range []int{64, 128, 256} {
		accelerated := capability{zeroLine: true, lineSize: line}

		sizes := []int{
			64, 100, 127, 128, 129,
			line - 1, line, line + 1,
			2*line - 17, 2 * line, 3*line + 10,
			8*line + 1, 1 << 16,
		}
		for _, n := range sizes {
			for align := 0; align < 16; align++ {
				ba, ca := window(t, n, align)
				bg, cg := window(t, n, align)
				fillGeneric(ba, 0, accelerated)
				fillGeneric(bg, 0, generic)
				require.Equal(t, bg, ba, "line=%d n=%d align=%d", line, n, align)
				require.True(t, bytes.Equal(ba, make([]byte, n)), "line=%d n=%d align=%d", line, n, align)
				ca()
				cg()
			}
		}
	}
}

// A nonzero value must never reach the line-zero kernel, whatever the
// capability descriptor says.
func TestNonZeroValueSkipsZeroPath(t *testing.T) {
	accelerated := capability{zeroLine: true, lineSize: 128}
	b, check := window(t, 4096, 9)
	fillGeneric(b, 0x11, accelerated)
	require.True(t, bytes.Equal(b, bytes.Repeat([]byte{0x11}, len(b))))
	check()
}

func TestZeroLine(t *testing.T) {
	for _, line := range []int{16, 64, 128, 256} {
		b, check := window(t, line, 0)
		for i := range b {
			b[i] = 0xFF
		}
		zeroLine(b)
		require.True(t, bytes.Equal(b, make([]byte, line)), "line=%d", line)
		check()
	}
}

// Lengths that leave less than a full line after alignment must fall back
// to the bulk loop rather than risk a short line store.
func TestZeroShortAfterAlignment(t *testing.T) {
	accelerated := capability{zeroLine: true, lineSize: 1024}
	for _, n := range []int{128, 500, 1023, 1024 + 15} {
		for align := 0; align < 16; align++ {
			b, check := window(t, n, align)
			fillGeneric(b, 0, accelerated)
			require.True(t, bytes.Equal(b, make([]byte, n)), "n=%d align=%d", n, align)
			check()
		}
	}
}
