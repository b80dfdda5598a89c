package easyconfig

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// A Setting is a single named value within a [SettingsGroup].
//
// The value is stored as canonical raw text: a quoted string, a bare true
// or false, a bare number or date, or a comma-joined list of those. The
// typed setters keep it that way; the typed accessors read it back and
// return a [*ConversionError] if it does not have the requested shape.
type Setting struct {
	name    string
	raw     string
	isArray bool
	lno     int
}

func newSetting(name, raw string, isArray bool, lno int) *Setting {
	return &Setting{name: name, raw: raw, isArray: isArray, lno: lno}
}

// Name returns the setting's name.
func (s *Setting) Name() string { return s.name }

// RawValue returns the canonical raw text of the value.
func (s *Setting) RawValue() string { return s.raw }

// IsArray reports whether the value holds several comma-separated elements.
func (s *Setting) IsArray() bool { return s.isArray }

// Lno returns the 1-based line on which the setting was read, or 0 if it
// was created in code.
func (s *Setting) Lno() int { return s.lno }

// Int returns the value as an int.
func (s *Setting) Int() (int, error) {
	return ValueAs[int](s)
}

// Float returns the value as a float64.
func (s *Setting) Float() (float64, error) {
	return ValueAs[float64](s)
}

// Bool returns the value as a bool. Only true and false are accepted;
// synonyms such as yes are normalized when the file is read.
func (s *Setting) Bool() (bool, error) {
	return ValueAs[bool](s)
}

// Text returns the value with its surrounding quotes removed. The raw
// value must be quoted.
func (s *Setting) Text() (string, error) {
	return ValueAs[string](s)
}

// Ints returns each comma-separated element as an int.
func (s *Setting) Ints() ([]int, error) {
	return ValuesAs[int](s)
}

// Floats returns each comma-separated element as a float64.
func (s *Setting) Floats() ([]float64, error) {
	return ValuesAs[float64](s)
}

// Bools returns each comma-separated element as a bool.
func (s *Setting) Bools() ([]bool, error) {
	return ValuesAs[bool](s)
}

// Strings returns every quoted literal in the value, without quotes.
// Commas inside the quotes are preserved.
//
// Text outside of quotes is skipped rather than reported, so "a",b
// yields just a. Only a value with no quoted literal at all is an error.
func (s *Setting) Strings() ([]string, error) {
	return ValuesAs[string](s)
}

// ValueAs reads the whole raw value of s as a T. T may be any type
// supported by [Unmarshal] for a scalar field.
func ValueAs[T any](s *Setting) (T, error) {
	var zero T
	v, err := parseStrict(s.name, s.raw, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	return v.Interface().(T), nil
}

var stringLiteralRegexp = regexp.MustCompile(`"[^"]*"`)

// ValuesAs splits the raw value of s on commas and reads each element as
// a T. For strings, each quoted literal is one element instead.
func ValuesAs[T any](s *Setting) ([]T, error) {
	t := reflect.TypeFor[T]()

	var parts []string
	if t.Kind() == reflect.String {
		parts = stringLiteralRegexp.FindAllString(s.raw, -1)
		if len(parts) == 0 && s.raw != "" {
			return nil, &ConversionError{Setting: s.name, Raw: s.raw, Type: reflect.SliceOf(t), Err: errNotQuoted}
		}
	} else {
		parts = strings.Split(s.raw, ",")
	}

	values := make([]T, len(parts))
	for i, part := range parts {
		v, err := parseStrict(s.name, part, t)
		if err != nil {
			return nil, err
		}
		values[i] = v.Interface().(T)
	}
	return values, nil
}

// SetRaw replaces the value with text as if it had been read from a file:
// arrays are detected and boolean synonyms normalized.
func (s *Setting) SetRaw(text string) {
	s.raw, s.isArray = classifyValue(strings.TrimSpace(text))
}

// SetString stores a quoted string.
func (s *Setting) SetString(value string) {
	s.set(quote(value))
}

// SetStrings stores an array of quoted strings.
func (s *Setting) SetStrings(values ...string) {
	setArray(s, values, quote)
}

// SetInt stores an integer.
func (s *Setting) SetInt(value int) {
	s.set(strconv.Itoa(value))
}

// SetInts stores an array of integers.
func (s *Setting) SetInts(values ...int) {
	setArray(s, values, strconv.Itoa)
}

// SetFloat stores a floating point number, with . as the decimal separator
// and no exponent.
func (s *Setting) SetFloat(value float64) {
	s.set(formatFloat(value))
}

// SetFloats stores an array of floating point numbers.
func (s *Setting) SetFloats(values ...float64) {
	setArray(s, values, formatFloat)
}

// SetBool stores true or false.
func (s *Setting) SetBool(value bool) {
	s.set(strconv.FormatBool(value))
}

// SetBools stores an array of booleans.
func (s *Setting) SetBools(values ...bool) {
	setArray(s, values, strconv.FormatBool)
}

func (s *Setting) set(raw string) {
	s.raw = raw
	s.isArray = false
}

func setArray[T any](s *Setting, values []T, format func(T) string) {
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = format(v)
	}
	s.raw = strings.Join(strs, ",")
	s.isArray = true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
