package validate

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/ConradIrwin/easyconfig-go"
	"github.com/go-playground/validator/v10"
)

var checker = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v, which should have been filled from f by
// easyconfig.Unmarshal, against its `validate` struct tags. The errors are
// sorted by line number. It returns nil if v is valid.
func Struct(f *easyconfig.ConfigFile, v any) []ValidationError {
	err := checker.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return []ValidationError{{msg: invalid.Error()}}
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{msg: err.Error()}}
	}

	result := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		result = append(result, fromFieldError(f, fe))
	}
	slices.SortStableFunc(result, func(a, b ValidationError) int {
		return a.Lno() - b.Lno()
	})
	return result
}

func fromFieldError(f *easyconfig.ConfigFile, fe validator.FieldError) ValidationError {
	// StructNamespace is Root.Group.Key, with [i] suffixes on sequences.
	path := strings.Split(fe.StructNamespace(), ".")
	ve := ValidationError{}
	if len(path) > 2 || (len(path) == 2 && isGroupType(fe.Type())) {
		ve.group = stripIndex(path[1])
	}
	if len(path) > 2 {
		ve.key = stripIndex(path[2])
	}

	if group, ok := f.SettingsGroup(ve.group); ok {
		ve.lno = group.Lno()
		if setting, ok := group.Setting(ve.key); ok {
			ve.lno = setting.Lno()
		}
	}
	ve.msg = message(fe, ve.group, ve.key)
	return ve
}

// isGroupType reports whether a root field of type t is filled from a
// group, as easyconfig.Unmarshal does for structs and pointers to structs
// that are not themselves read from a single value.
func isGroupType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct && !reflect.PointerTo(t).Implements(textUnmarshalerType)
}

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

func stripIndex(name string) string {
	name, _, _ = strings.Cut(name, "[")
	return name
}

func message(fe validator.FieldError, group, key string) string {
	name := key
	if name == "" {
		name = group
	}
	if name == "" {
		name = fe.Field()
	}

	switch fe.Tag() {
	case "required":
		switch {
		case key != "":
			return "missing required key " + name
		case group != "":
			return "missing required group " + name
		}
		return "missing required field " + name
	case "min", "gte":
		return fmt.Sprintf("expected %s to be at least %s", name, fe.Param())
	case "max", "lte":
		return fmt.Sprintf("expected %s to be at most %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("expected %s to be greater than %s", name, fe.Param())
	case "lt":
		return fmt.Sprintf("expected %s to be less than %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("expected %s to have length %s", name, fe.Param())
	case "oneof":
		return fmt.Sprintf("expected %s to match %s", name, joinWithOr(strings.Fields(fe.Param())))
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("expected %s to satisfy %s=%s", name, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("expected %s to satisfy %s", name, fe.Tag())
	}
}
