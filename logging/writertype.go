package logging

import "strings"

// WriterType enumerates where a Channel's log records are written.
type WriterType string

const (
	WriterConsoleStdout WriterType = "console-stdout"
	WriterConsoleStderr WriterType = "console-stderr"
	WriterFile          WriterType = "file"
)

// IsEmpty reports whether the WriterType has not been set.
func (w WriterType) IsEmpty() bool {
	return strings.TrimSpace(string(w)) == ""
}

// IsValid reports whether w is one of the known writer types.
func (w WriterType) IsValid() bool {
	switch w {
	case WriterConsoleStdout, WriterConsoleStderr, WriterFile:
		return true
	default:
		return false
	}
}

// WriterTypes is a set of WriterType, as a Channel may fan out to several.
type WriterTypes []WriterType

// HasMatch reports whether wt contains target.
func (wt WriterTypes) HasMatch(target WriterType) bool {
	for _, w := range wt {
		if w == target {
			return true
		}
	}
	return false
}
