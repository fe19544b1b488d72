package formatter

import (
	"time"

	"github.com/philipp01105/rawlog/core"
)

// AppendRawPrefix appends the default raw log prefix "[file : line] RAW: "
// to dst within its capacity.
func AppendRawPrefix(dst []byte, file string, line int) (out []byte, complete bool) {
	b := buffer{buf: dst}
	b.writeByte('[')
	b.writeString(file)
	b.writeString(" : ")
	writeDecimal(&b, line)
	b.writeString("] RAW: ")
	return b.buf, !b.full
}

// PrefixConfig holds configuration for the glog style prefix hook
type PrefixConfig struct {
	// MinSeverity suppresses messages below it (default: core.Info).
	// Fatal messages are always written.
	MinSeverity core.Severity
	// IncludeTime adds "mmdd hh:mm:ss.uuuuuu" after the severity letter
	IncludeTime bool
	// Now supplies the timestamp (default: time.Now, or core.CoarseNow
	// with CoarseTime)
	Now func() time.Time
	// CoarseTime reads a cached clock refreshed every 500µs instead of
	// calling time.Now per line
	CoarseTime bool
}

// NewPrefixHook returns a prefix hook that renders glog style prefixes:
//
//	E1016 21:13:17.123456 file.go:42] RAW: message
//
// The hook writes straight into the provided window and does not allocate.
func NewPrefixHook(cfg PrefixConfig) core.PrefixHook {
	switch {
	case cfg.Now != nil:
	case cfg.CoarseTime:
		core.StartCoarseClock()
		cfg.Now = core.CoarseNow
	default:
		cfg.Now = time.Now
	}
	if cfg.IncludeTime {
		// The first conversion to time.Local loads zoneinfo, which allocates.
		cfg.Now().Date()
	}
	return func(sev core.Severity, file string, line int, buf []byte) (int, bool) {
		if sev < cfg.MinSeverity && sev != core.Fatal {
			return 0, false
		}
		b := buffer{buf: buf[:0]}
		b.writeByte(sev.Letter())
		if cfg.IncludeTime {
			writeGlogTime(&b, cfg.Now())
			b.writeByte(' ')
		}
		b.writeString(file)
		b.writeByte(':')
		writeDecimal(&b, line)
		b.writeString("] RAW: ")
		return len(b.buf), true
	}
}

// writeGlogTime writes "mmdd hh:mm:ss.uuuuuu" in local time.
func writeGlogTime(b *buffer, t time.Time) {
	_, month, day := t.Date()
	hour, minute, sec := t.Clock()
	writeZeroPadded(b, int(month), 2)
	writeZeroPadded(b, day, 2)
	b.writeByte(' ')
	writeZeroPadded(b, hour, 2)
	b.writeByte(':')
	writeZeroPadded(b, minute, 2)
	b.writeByte(':')
	writeZeroPadded(b, sec, 2)
	b.writeByte('.')
	writeZeroPadded(b, t.Nanosecond()/1000, 6)
}
