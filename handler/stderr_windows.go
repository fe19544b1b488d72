//go:build windows

package handler

import "golang.org/x/sys/windows"

const fullySupported = true

func writeStderr(p []byte) (int, error) {
	return windows.Write(windows.Stderr, p)
}

func isTemporary(err error) bool {
	return err == windows.ERROR_OPERATION_ABORTED
}
