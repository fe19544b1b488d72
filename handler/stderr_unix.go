//go:build unix

package handler

import "golang.org/x/sys/unix"

const fullySupported = true

func writeStderr(p []byte) (int, error) {
	return unix.Write(unix.Stderr, p)
}

func isTemporary(err error) bool {
	return err == unix.EINTR || err == unix.EAGAIN
}
