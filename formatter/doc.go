// Package formatter renders raw log lines into fixed-capacity buffers.
//
// Every function here appends into a caller-provided slice and never grows
// it: output that does not fit in cap(dst) is dropped and reported through a
// complete flag instead of an error. This keeps the raw logging path free of
// heap allocations, which is why Appendf implements its own printf instead of
// using package fmt. Integers, floats and quoted strings are built in small
// stack scratch arrays (strconv.AppendFloat, utf8.AppendRune) before being
// copied in.
//
// AppendRawPrefix produces the default "[file : line] RAW: " prefix, and
// NewPrefixHook builds a glog style prefix hook with a severity threshold.
package formatter
