//go:build !unix && !windows

package handler

// There is no raw write primitive wired up for this platform.
const fullySupported = false

func writeStderr(p []byte) (int, error) {
	return len(p), nil
}

func isTemporary(error) bool {
	return false
}
