//go:build !rawlog_debug

package core

// DebugMode reports whether the module was built with the rawlog_debug tag.
const DebugMode = false

// DebugFatal is Fatal in debug builds and Error otherwise. It is declared
// only in this package so every importer sees the same resolution.
const DebugFatal = Error
