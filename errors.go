package filter

import (
	"github.com/k0sproject/filter/errstring"
	"github.com/k0sproject/filter/iostream"
)

var (
	ErrUsage       = errstring.New("usage")       // ErrUsage is returned when the command is invoked with the wrong arguments
	ErrRead        = iostream.ErrRead             // ErrRead is returned when reading the input fails
	ErrOutOfMemory = iostream.ErrOutOfMemory      // ErrOutOfMemory is returned when the input buffer can not be grown
	ErrWrite       = errstring.New("write")       // ErrWrite is returned when writing the output fails
)

// ExitCode returns the process exit code for err: 0 for nil, 1 for any failure.
func ExitCode(err error) int {
	return errstring.ExitCode(err)
}
