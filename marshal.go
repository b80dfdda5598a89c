package easyconfig

import (
	"encoding"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// WriteTo writes f in the configuration file format: each group header,
// its settings as name = value lines, and a blank line. Raw values are
// written exactly as stored.
func (f *ConfigFile) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.format())
	return int64(n), err
}

// MarshalText returns f in the configuration file format.
func (f *ConfigFile) MarshalText() ([]byte, error) {
	return []byte(f.format()), nil
}

func (f *ConfigFile) format() string {
	var b strings.Builder
	for name, group := range f.SettingsGroups() {
		b.WriteString("[" + name + "]\n")
		for key, setting := range group.Settings() {
			b.WriteString(key + " = " + setting.raw + "\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Marshal converts a Go struct into a configuration file, the reverse of
// [Unmarshal].
//
// Each exported field of v that is a struct, or a non-nil pointer to one,
// becomes a group named after the field. Within a group, each exported
// field becomes a setting named after the field, written with the same
// rules as the setters on [Setting]. Nil pointers and empty slices are
// skipped. Fields of v that are not structs are ignored.
//
// It returns an error if a group contains a field that cannot be written
// as a setting (for example a map, a nested struct or a channel).
func Marshal(v any) (*ConfigFile, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Pointer || val.Kind() == reflect.Interface {
		if val.IsNil() {
			return nil, fmt.Errorf("invalid value, must be a non-nil struct")
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unsupported type: %T", v)
	}

	f := New()
	t := val.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		if fv.Kind() != reflect.Struct || isScalarType(fv.Type()) {
			continue
		}
		group, err := f.AddSettingsGroup(field.Name)
		if err != nil {
			return nil, err
		}
		if err := marshalGroup(group, fv); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func marshalGroup(group *SettingsGroup, val reflect.Value) error {
	t := val.Type()
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := val.Field(i)
		if fv.Kind() == reflect.Pointer {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}

		if isScalarType(fv.Type()) {
			raw, err := marshalScalar(fv)
			if err != nil {
				return fmt.Errorf("%s.%s: %w", group.name, field.Name, err)
			}
			group.put(newSetting(field.Name, raw, false, 0))
			continue
		}

		switch fv.Kind() {
		case reflect.Slice, reflect.Array:
			if fv.Len() == 0 {
				continue
			}
			strs := make([]string, fv.Len())
			for j := range fv.Len() {
				elem := fv.Index(j)
				if elem.Kind() == reflect.Pointer {
					if elem.IsNil() {
						continue
					}
					elem = elem.Elem()
				}
				if !isScalarType(elem.Type()) {
					return fmt.Errorf("%s.%s: unsupported type: %s", group.name, field.Name, fv.Type())
				}
				raw, err := marshalScalar(elem)
				if err != nil {
					return fmt.Errorf("%s.%s: %w", group.name, field.Name, err)
				}
				strs[j] = raw
			}
			group.put(newSetting(field.Name, strings.Join(strs, ","), true, 0))
		default:
			return fmt.Errorf("%s.%s: unsupported type: %s", group.name, field.Name, fv.Type())
		}
	}
	return nil
}

func marshalScalar(v reflect.Value) (string, error) {
	switch v.Type() {
	case timeType:
		return v.Interface().(time.Time).Format(time.RFC3339Nano), nil
	case decimalType:
		return v.Interface().(decimal.Decimal).String(), nil
	}

	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		text, err := m.MarshalText()
		if err != nil {
			return "", err
		}
		return quote(string(text)), nil
	}

	switch v.Kind() {
	case reflect.String:
		return quote(v.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	}
	return "", fmt.Errorf("unsupported type: %s", v.Type())
}
