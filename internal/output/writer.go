package output

import (
	"fmt"
	"os"

	"github.com/moby/sys/atomicwriter"

	"github.com/shinji-kodama/subpalindromes/internal/model"
)

// FileMode is the permission set applied to written test inputs.
const FileMode os.FileMode = 0o644

// lineSuffix terminates every generated line. The space before the newline
// is part of the file format consumed by the subpalindromes driver.
const lineSuffix = " \n"

// FormatLine returns the exact bytes written for content.
func FormatLine(content string) []byte {
	buf := make([]byte, 0, len(content)+len(lineSuffix))
	buf = append(buf, content...)
	buf = append(buf, lineSuffix...)
	return buf
}

// WriteFile creates or replaces path with FormatLine(content).
//
// The write is all-or-nothing: the data goes to a temporary file in the
// same directory, which is synced and renamed over path. Every handle is
// released on all exit paths. Failures are returned as a model.CLIError
// of kind KindIO.
func WriteFile(path, content string) error {
	if path == "" {
		return model.WrapIOError("cannot write output", fmt.Errorf("empty path"))
	}

	if err := atomicwriter.WriteFile(path, FormatLine(content), FileMode); err != nil {
		return model.WrapIOError(fmt.Sprintf("cannot write %s", path), err)
	}
	return nil
}
