//go:build unix

package handler

import (
	"testing"

	"golang.org/x/sys/unix"
)

var temporaryErr error = unix.EINTR

func TestFullySupported(t *testing.T) {
	if !FullySupported() {
		t.Error("FullySupported() = false on a unix platform")
	}
}

func TestWriteToStderr(t *testing.T) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer unix.Close(fds[0])

	saved, err := unix.Dup(unix.Stderr)
	if err != nil {
		t.Fatalf("dup: %v", err)
	}
	if err := unix.Dup2(fds[1], unix.Stderr); err != nil {
		t.Fatalf("dup2: %v", err)
	}
	ok := WriteToStderr([]byte("raw line\n"))
	unix.Dup2(saved, unix.Stderr)
	unix.Close(saved)
	unix.Close(fds[1])

	if !ok {
		t.Fatal("WriteToStderr() reported failure")
	}
	buf := make([]byte, 64)
	n, err := unix.Read(fds[0], buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(buf[:n]) != "raw line\n" {
		t.Errorf("Expected 'raw line\\n', got %q", buf[:n])
	}
}

func TestIsTemporary(t *testing.T) {
	if !isTemporary(unix.EINTR) || !isTemporary(unix.EAGAIN) {
		t.Error("EINTR and EAGAIN must be retried")
	}
	if isTemporary(unix.EBADF) {
		t.Error("EBADF must not be retried")
	}
}
