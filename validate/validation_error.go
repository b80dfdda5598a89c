package validate

import (
	"fmt"
	"strings"
)

// A ValidationError represents a single validation error.
// Use .Error() to get the message, and use .Lno to get the line number.
type ValidationError struct {
	msg   string
	lno   int
	group string
	key   string
}

func joinWithOr(items []string) string {
	if len(items) == 0 {
		return ""
	}
	if len(items) == 1 {
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
}

// Lno returns the 1-indexed line number on which the error occurred: the
// line of the offending setting, or of its group header if the setting is
// missing.
func (ve *ValidationError) Lno() int {
	if ve.lno == 0 {
		return 1
	}
	return ve.lno
}

// Group returns the name of the group the error refers to, if any.
func (ve *ValidationError) Group() string {
	return ve.group
}

// Key returns the name of the setting the error refers to, if any.
func (ve *ValidationError) Key() string {
	return ve.key
}

// Range returns the 0-based byte range within line that the error refers
// to (assuming that line is the line at Lno in the loaded file): the
// value of a setting, or the whole line otherwise.
func (ve *ValidationError) Range(line string) (int, int) {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	trimmed := strings.TrimLeft(line, " \t")
	start := len(line) - len(trimmed)
	end := len(strings.TrimRight(line, " \t"))
	if ve.key == "" || ve.lno == 0 {
		return start, end
	}
	eq := strings.Index(line, "=")
	if eq < 0 || strings.TrimSpace(line[:eq]) != ve.key {
		return start, end
	}
	value := line[eq+1:]
	valueStart := eq + 1 + len(value) - len(strings.TrimLeft(value, " \t"))
	if valueStart > end {
		return start, end
	}
	return valueStart, end
}

// Msg returns a human-readable description of the problem suitable for
// showing to end-users.
func (ve *ValidationError) Msg() string {
	return ve.msg
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return fmt.Sprintf("%d: %s", ve.Lno(), ve.Msg())
}
