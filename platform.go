package memfill

// Kernel returns the name of the fill strategy selected at startup.
func Kernel() string {
	switch {
	case caps.bulkSet:
		return "bulkset"
	case caps.zeroLine:
		return "zeroline"
	default:
		return "generic"
	}
}

// LineSize returns the granularity, in bytes, of the line-zero kernel used
// for large zero fills. It reports the 64-byte floor when the kernel is
// unavailable.
func LineSize() int {
	return caps.lineSize
}
