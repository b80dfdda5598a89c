package easyconfig

import (
	"fmt"
	"reflect"
)

// A GrammarError is returned when a configuration file cannot be parsed.
// Loading stops at the first one.
type GrammarError struct {
	// Lno is the 1-based line number of the offending line.
	Lno int
	Msg string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%d: %s", e.Lno, e.Msg)
}

// A DuplicateGroupError is returned by [ConfigFile.AddSettingsGroup] when
// the file already has a group with that name.
type DuplicateGroupError struct {
	Name string
}

func (e *DuplicateGroupError) Error() string {
	return fmt.Sprintf("group already exists with name %q", e.Name)
}

// A DuplicateSettingError is returned by [SettingsGroup.AddSetting] when
// the group already has a setting with that name.
type DuplicateSettingError struct {
	Group string
	Name  string
}

func (e *DuplicateSettingError) Error() string {
	return fmt.Sprintf("setting already exists with name %q in group %q", e.Name, e.Group)
}

// A ConversionError is returned by the typed accessors on [Setting] when
// the raw value cannot be read as the requested type.
type ConversionError struct {
	Setting string
	Raw     string
	Type    reflect.Type
	Err     error
}

func (e *ConversionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot convert %s = %s to %s: %v", e.Setting, e.Raw, e.Type, e.Err)
	}
	return fmt.Sprintf("cannot convert %s = %s to %s", e.Setting, e.Raw, e.Type)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
