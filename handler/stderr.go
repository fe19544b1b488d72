package handler

// maxStalledWrites bounds how many writes that made no progress are retried
// for one buffer. Writes that make progress are bounded by the buffer length.
const maxStalledWrites = 4

// WriteToStderr writes p to the process's standard error with the raw write
// system call, bypassing any buffered stream, so it is usable while the rest
// of the runtime is unhealthy. Partial writes are continued; interrupted or
// would-block writes are retried a bounded number of times; any other failure
// drops the rest of p. It reports whether all of p was written and never
// blocks beyond the underlying system call.
func WriteToStderr(p []byte) bool {
	if !fullySupported {
		return false
	}
	return writeAll(writeStderr, p)
}

// FullySupported reports whether WriteToStderr produces output on this
// platform. When it returns false raw log messages are discarded, but Fatal
// messages still terminate the process.
func FullySupported() bool {
	return fullySupported
}

func writeAll(write func([]byte) (int, error), p []byte) bool {
	stalled := 0
	for len(p) > 0 {
		n, err := write(p)
		if n > 0 {
			if n > len(p) {
				n = len(p)
			}
			p = p[n:]
			continue
		}
		if err != nil && !isTemporary(err) {
			return false
		}
		stalled++
		if stalled > maxStalledWrites {
			return false
		}
	}
	return true
}
