package rawlog

import (
	"sync"
	"testing"
)

// capture records every buffer handed to the writer
type capture struct {
	mu    sync.Mutex
	lines []string
	fail  bool
}

func (c *capture) write(p []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, string(p))
	return !c.fail
}

func (c *capture) all() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.lines))
	copy(out, c.lines)
	return out
}

func newTestLogger() (*rawLogger, *capture) {
	c := &capture{}
	return newRawLogger(c.write), c
}

// overrideExit replaces osExit for the duration of the test and returns a
// pointer to the recorded exit codes.
func overrideExit(t *testing.T) *[]int {
	t.Helper()
	var codes []int
	orig := osExit
	osExit = func(code int) { codes = append(codes, code) }
	t.Cleanup(func() { osExit = orig })
	return &codes
}
