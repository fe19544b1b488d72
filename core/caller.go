package core

import "runtime"

// CallerInfo contains information about the caller
type CallerInfo struct {
	File    string // basename of the source file
	Line    int
	Defined bool
}

// unknownFile is reported when the runtime cannot resolve a call site.
const unknownFile = "???"

// GetCaller retrieves the call site skip frames above its own caller. File
// is already reduced to its basename. The lookup does not allocate; it goes
// through runtime.Callers and FuncForPC because runtime.Caller does.
func GetCaller(skip int) CallerInfo {
	var pcs [1]uintptr
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return CallerInfo{File: unknownFile}
	}
	// pcs holds a return address; pc-1 lies inside the call instruction.
	pc := pcs[0] - 1
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallerInfo{File: unknownFile}
	}
	file, line := fn.FileLine(pc)
	return CallerInfo{
		File:    Basename(file),
		Line:    line,
		Defined: true,
	}
}
