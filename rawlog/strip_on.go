//go:build rawlog_strip

package rawlog

// stripLog removes every non-fatal call from rawlog_strip builds.
const stripLog = true
