// Package core defines the shared types used across the rawlog module.
//
// It provides the Severity type with its normalization rules, the build-mode
// dependent DebugFatal severity, the Basename resolver used to shorten source
// locations, call site lookup, and the hook signatures that customize raw
// logging.
//
// Everything here is pure or reads immutable runtime tables, so it is safe to
// use from any goroutine, including ones servicing signals, without
// allocating. DebugFatal is a constant chosen by the rawlog_debug build tag
// and therefore identical for every package linked into a binary.
package core
