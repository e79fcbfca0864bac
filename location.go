// location.go — source locations for diag frames.
//
// Design goals:
//   - Interop & correctness: use runtime.Caller for accurate call-site
//     resolution; a Location is ONE site, never a captured stack.
//   - Value semantics: Location is comparable with == and usable as a map key.
//   - Minimal policy: paths come from runtime as-is; no trimming here.
//
// Skip model for a typical call chain:
//
//	KeyNotFound → newKindErr → Here → runtime.Caller
//
// Each helper that forwards to Here adds +1 so the recorded site is the
// user-visible caller, mirroring the skip accounting of runtime.Caller
// (0 = the caller of Caller itself).
package diag

import (
	"runtime"
	"strconv"
)

// Location identifies a single source position. Column is optional; zero
// means "unknown/absent". Locations are immutable once created.
type Location struct {
	File   string // file path as provided by runtime (or caller)
	Line   int    // 1-based line number
	Column int    // 1-based column, 0 when absent
}

// At builds a Location from an explicit file and line.
func At(file string, line int) Location {
	return Location{File: file, Line: line}
}

// AtColumn builds a Location carrying a column as well.
func AtColumn(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// Here captures the location of the caller, skipping 'skip' additional
// frames (0 = the direct caller of Here). If resolution fails, the returned
// Location has File "unknown" and Line 0 rather than failing the error path.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown"}
	}
	return Location{File: file, Line: line}
}

// String renders "file:line", or "file:line:column" when a column is known.
func (l Location) String() string {
	s := l.File + ":" + strconv.Itoa(l.Line)
	if l.Column > 0 {
		s += ":" + strconv.Itoa(l.Column)
	}
	return s
}

// IsZero reports whether l is the zero Location (no file recorded).
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}
