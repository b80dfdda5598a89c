package easyconfig

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Unmarshal copies the contents of f into v, which must be a non-nil
// pointer to a struct.
//
// Each exported field of v whose name is exactly the name of a group is
// filled from that group. The field must be a struct or a pointer to a
// struct (allocated if nil). Within it, each setting is stored in the
// exported field with exactly the same name.
//
// A field can be a string, bool, any integer or float type,
// [github.com/shopspring/decimal.Decimal], [time.Time], or any
// [encoding.TextUnmarshaler]; a pointer to one of those; or an array or
// slice of either. Quotes around strings are removed. Sequences are read
// by splitting the raw value on commas (or on "," for strings, so that
// quoted commas survive).
//
// Unmarshal is forgiving: groups and settings without a
// matching field are ignored, fields without a matching group or setting
// are left alone, and a value that does not parse as the field's type
// leaves the field (or sequence element) at its zero value. The only
// error is an invalid target. Use the accessors on [Setting] when a
// malformed value should be reported.
func Unmarshal(f *ConfigFile, v any) error {
	target, err := structTarget(v)
	if err != nil {
		return err
	}
	bindings := rootBindings(target.Type())
	for name, group := range f.SettingsGroups() {
		b, ok := bindings[name]
		if !ok {
			continue
		}
		field := target.Field(b.index)
		if b.pointer {
			if field.IsNil() {
				field.Set(reflect.New(field.Type().Elem()))
			}
			field = field.Elem()
		}
		bindGroup(group, field)
	}
	return nil
}

// MapTo returns a new T filled from f as by [Unmarshal]. T must be a
// struct type.
func MapTo[T any](f *ConfigFile) (T, error) {
	var v T
	err := Unmarshal(f, &v)
	return v, err
}

// UnmarshalGroup copies the settings of g into v, which must be a
// non-nil pointer to a struct. It follows the same rules as [Unmarshal].
func UnmarshalGroup(g *SettingsGroup, v any) error {
	target, err := structTarget(v)
	if err != nil {
		return err
	}
	bindGroup(g, target)
	return nil
}

func structTarget(v any) (reflect.Value, error) {
	value := reflect.ValueOf(v)
	if value.Kind() != reflect.Pointer || value.IsNil() {
		return reflect.Value{}, fmt.Errorf("invalid target, must be a non-nil pointer")
	}
	if value.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("invalid target, must point to a struct, not %s", value.Elem().Type())
	}
	return value.Elem(), nil
}

func bindGroup(g *SettingsGroup, target reflect.Value) {
	bindings := settingBindings(target.Type())
	for name, setting := range g.Settings() {
		if b, ok := bindings[name]; ok {
			b.bind(setting, target.Field(b.index))
		}
	}
}

// A binder stores the value of a setting into a field.
type binder func(s *Setting, field reflect.Value)

type settingBinding struct {
	index int
	bind  binder
}

type groupBinding struct {
	index   int
	pointer bool
}

// Binding tables are built once per destination type.
var (
	settingTables sync.Map // reflect.Type -> map[string]settingBinding
	groupTables   sync.Map // reflect.Type -> map[string]groupBinding
)

func settingBindings(t reflect.Type) map[string]settingBinding {
	if table, ok := settingTables.Load(t); ok {
		return table.(map[string]settingBinding)
	}
	table := map[string]settingBinding{}
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		if bind := binderFor(field.Type); bind != nil {
			table[field.Name] = settingBinding{index: i, bind: bind}
		}
	}
	actual, _ := settingTables.LoadOrStore(t, table)
	return actual.(map[string]settingBinding)
}

func rootBindings(t reflect.Type) map[string]groupBinding {
	if table, ok := groupTables.Load(t); ok {
		return table.(map[string]groupBinding)
	}
	table := map[string]groupBinding{}
	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		ft, pointer := field.Type, false
		if ft.Kind() == reflect.Pointer {
			ft, pointer = ft.Elem(), true
		}
		if ft.Kind() == reflect.Struct && !isScalarType(ft) {
			table[field.Name] = groupBinding{index: i, pointer: pointer}
		}
	}
	actual, _ := groupTables.LoadOrStore(t, table)
	return actual.(map[string]groupBinding)
}

// binderFor returns the binder for fields of type t, or nil if no setting
// can be stored in such a field.
func binderFor(t reflect.Type) binder {
	switch {
	case isScalarType(t):
		return scalarBinder(t, false)
	case t.Kind() == reflect.Pointer && isScalarType(t.Elem()):
		return scalarBinder(t.Elem(), true)
	case t.Kind() == reflect.Slice || t.Kind() == reflect.Array:
		return sequenceBinder(t)
	}
	return nil
}

func scalarBinder(t reflect.Type, nullable bool) binder {
	return func(s *Setting, field reflect.Value) {
		if s.isArray {
			return
		}
		v, ok := tryCoerce(s.raw, t)
		if !ok {
			return
		}
		if nullable {
			v = pointerTo(v)
		}
		field.Set(v)
	}
}

// sequenceBinder handles both fixed-size arrays and slices: the sequence
// is built by makeSequence and then filled element by element.
func sequenceBinder(t reflect.Type) binder {
	elem, nullable := t.Elem(), false
	if elem.Kind() == reflect.Pointer {
		elem, nullable = elem.Elem(), true
	}
	if !isScalarType(elem) {
		return nil
	}
	strs := elem.Kind() == reflect.String

	return func(s *Setting, field reflect.Value) {
		parts := splitElements(s.raw, strs)
		seq := makeSequence(t, len(parts))
		for i := range min(len(parts), seq.Len()) {
			v, ok := tryCoerce(parts[i], elem)
			if !ok {
				continue
			}
			if nullable {
				v = pointerTo(v)
			}
			seq.Index(i).Set(v)
		}
		field.Set(seq)
	}
}

func makeSequence(t reflect.Type, n int) reflect.Value {
	if t.Kind() == reflect.Array {
		return reflect.New(t).Elem()
	}
	return reflect.MakeSlice(t, n, n)
}

// splitElements splits a raw array value. Strings are split on "," when
// it occurs, which keeps commas inside quoted elements.
func splitElements(raw string, strs bool) []string {
	if strs && strings.Contains(raw, `","`) {
		return strings.Split(raw, `","`)
	}
	return strings.Split(raw, ",")
}

func pointerTo(v reflect.Value) reflect.Value {
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}
