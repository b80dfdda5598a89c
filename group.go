package easyconfig

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// A SettingsGroup is a named section of a configuration file holding an
// ordered set of settings.
type SettingsGroup struct {
	name     string
	lno      int
	settings *orderedmap.OrderedMap[string, *Setting]
}

func newSettingsGroup(name string, lno int) *SettingsGroup {
	return &SettingsGroup{
		name:     name,
		lno:      lno,
		settings: orderedmap.New[string, *Setting](),
	}
}

// Name returns the group's name.
func (g *SettingsGroup) Name() string { return g.name }

// Lno returns the 1-based line of the group header, or 0 if the group was
// created in code.
func (g *SettingsGroup) Lno() int { return g.lno }

// Len returns the number of settings in the group.
func (g *SettingsGroup) Len() int { return g.settings.Len() }

// Setting looks up a setting by name.
func (g *SettingsGroup) Setting(name string) (*Setting, bool) {
	return g.settings.Get(name)
}

// Settings iterates over the settings in the order they were added.
func (g *SettingsGroup) Settings() iter.Seq2[string, *Setting] {
	return func(yield func(string, *Setting) bool) {
		for pair := g.settings.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// AddSetting adds an empty setting to the group. Use the setters on the
// returned [Setting] to give it a value.
func (g *SettingsGroup) AddSetting(name string) (*Setting, error) {
	if _, ok := g.settings.Get(name); ok {
		return nil, &DuplicateSettingError{Group: g.name, Name: name}
	}
	s := newSetting(name, "", false, 0)
	g.settings.Set(name, s)
	return s, nil
}

// DeleteSetting removes the named setting. It does nothing if there is no
// such setting.
func (g *SettingsGroup) DeleteSetting(name string) {
	g.settings.Delete(name)
}

// put stores s, replacing any setting with the same name in place.
func (g *SettingsGroup) put(s *Setting) (replaced bool) {
	_, replaced = g.settings.Set(s.name, s)
	return replaced
}
