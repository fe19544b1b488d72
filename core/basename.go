package core

// Basename returns the part of path after the last '/' or '\' separator, or
// path itself when it has none. It only inspects the string and never touches
// the filesystem.
func Basename(path string) string {
	for i := len(path); i > 0; i-- {
		if c := path[i-1]; c == '/' || c == '\\' {
			return path[i:]
		}
	}
	return path
}
