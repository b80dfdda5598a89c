package easyconfig

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

var (
	timeType            = reflect.TypeFor[time.Time]()
	decimalType         = reflect.TypeFor[decimal.Decimal]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

var errNotQuoted = errors.New("value is not a quoted string")

// isScalarType reports whether values of t can be read from a single raw
// token.
func isScalarType(t reflect.Type) bool {
	if t == timeType || t == decimalType || reflect.PointerTo(t).Implements(textUnmarshalerType) {
		return true
	}
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// parseScalar converts text into a new value of type t. Strings are
// returned unchanged; callers decide how quotes are treated.
func parseScalar(text string, t reflect.Type) (reflect.Value, error) {
	v := reflect.New(t).Elem()

	switch t {
	case timeType:
		tm, err := dateparse.ParseAny(strings.TrimSpace(text))
		if err != nil {
			return v, err
		}
		v.Set(reflect.ValueOf(tm))
		return v, nil
	case decimalType:
		d, err := decimal.NewFromString(strings.TrimSpace(text))
		if err != nil {
			return v, err
		}
		v.Set(reflect.ValueOf(d))
		return v, nil
	}

	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		if err := tu.UnmarshalText([]byte(text)); err != nil {
			return v, err
		}
		return v, nil
	}

	switch t.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := parseBool(text)
		if err != nil {
			return v, err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(text), 10, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(strings.TrimSpace(text), 10, t.Bits())
		if err != nil {
			return v, err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(text), t.Bits())
		if err != nil {
			return v, err
		}
		v.SetFloat(f)
	default:
		return v, fmt.Errorf("unsupported type %s", t)
	}
	return v, nil
}

// parseBool accepts true and false in any casing, and nothing else.
func parseBool(text string) (bool, error) {
	switch s := strings.TrimSpace(text); {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", text)
}

// tryCoerce converts one raw token for the mapping engine. Quotes around
// strings (and around text for TextUnmarshalers) are optional. It never
// fails loudly: ok is false when the token does not parse.
func tryCoerce(raw string, t reflect.Type) (v reflect.Value, ok bool) {
	if t.Kind() == reflect.String || (t != timeType && t != decimalType && reflect.PointerTo(t).Implements(textUnmarshalerType)) {
		raw = unquote(raw)
	}
	v, err := parseScalar(raw, t)
	return v, err == nil
}

// parseStrict converts one raw token for the typed accessors. Strings
// must be quoted.
func parseStrict(name, raw string, t reflect.Type) (reflect.Value, error) {
	text := raw
	if t.Kind() == reflect.String {
		if !isQuoted(raw) {
			return reflect.Value{}, &ConversionError{Setting: name, Raw: raw, Type: t, Err: errNotQuoted}
		}
		text = raw[1 : len(raw)-1]
	}
	v, err := parseScalar(text, t)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			err = ne.Err
		}
		return reflect.Value{}, &ConversionError{Setting: name, Raw: raw, Type: t, Err: err}
	}
	return v, nil
}
