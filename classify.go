package easyconfig

import "strings"

// classifyValue decides whether the right-hand side of a setting is an
// array and returns its canonical raw form.
//
// Array detection is quote-aware: a comma only counts when it is not
// between double quotes. Splitting for normalization is not, so a quoted
// element containing a comma is split in two (and re-joined unchanged
// unless one half happens to be a boolean synonym).
func classifyValue(value string) (string, bool) {
	isArray := false
	inString := false
	for _, c := range value {
		switch {
		case c == ',' && !inString:
			isArray = true
		case c == '"':
			inString = !inString
		}
	}

	if isArray {
		pieces := strings.Split(value, ",")
		for i, piece := range pieces {
			pieces[i] = normalizeBool(strings.TrimSpace(piece))
		}
		return strings.Join(pieces, ","), true
	}

	if strings.HasPrefix(value, `"`) {
		return value, false
	}
	return normalizeBool(value), false
}

// normalizeBool maps the boolean synonyms to the literals true and false.
func normalizeBool(s string) string {
	switch strings.ToLower(s) {
	case "on", "yes", "true":
		return "true"
	case "off", "no", "false":
		return "false"
	}
	return s
}

// isQuoted reports whether s is wrapped in double quotes on both ends.
func isQuoted(s string) bool {
	return len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"'
}

// unquote strips one layer of double quotes, independently at each end.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// quote wraps s in double quotes unless it already starts or ends with one.
func quote(s string) string {
	if !strings.HasPrefix(s, `"`) {
		s = `"` + s
	}
	if !strings.HasSuffix(s, `"`) || len(s) == 1 {
		s += `"`
	}
	return s
}
