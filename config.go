package easyconfig

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"log/slog"
	"os"
	"path/filepath"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// A ConfigFile is an in-memory configuration: an ordered set of named
// groups, each holding an ordered set of settings.
//
// A ConfigFile is not safe for concurrent use.
type ConfigFile struct {
	groups *orderedmap.OrderedMap[string, *SettingsGroup]
}

// New returns an empty configuration.
func New() *ConfigFile {
	return &ConfigFile{groups: orderedmap.New[string, *SettingsGroup]()}
}

// Open reads the configuration file at path.
func Open(path string, opts ...Option) (*ConfigFile, error) {
	f := New()
	if err := f.Load(path, opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// Read reads a configuration from r.
func Read(r io.Reader, opts ...Option) (*ConfigFile, error) {
	f := New()
	if err := f.LoadFrom(r, opts...); err != nil {
		return nil, err
	}
	return f, nil
}

// Parse parses a configuration held in memory.
func Parse(data []byte, opts ...Option) (*ConfigFile, error) {
	return Read(bytes.NewReader(data), opts...)
}

// Load replaces the contents of f with the configuration file at path.
// If the file cannot be read or parsed, f is left unchanged.
func (f *ConfigFile) Load(path string, opts ...Option) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer file.Close()

	if err := f.LoadFrom(file, opts...); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// LoadFrom replaces the contents of f with the configuration read from r.
// If r cannot be read or parsed, f is left unchanged.
func (f *ConfigFile) LoadFrom(r io.Reader, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	data, err := io.ReadAll(o.decode(r))
	if err != nil {
		return err
	}
	groups, err := parse(string(data), o.logger)
	if err != nil {
		return err
	}
	f.groups = groups
	return nil
}

func parse(input string, logger *slog.Logger) (*orderedmap.OrderedMap[string, *SettingsGroup], error) {
	groups := orderedmap.New[string, *SettingsGroup]()
	var current *SettingsGroup
	key := ""
	settings := 0
	lastLine := 0

	for lno, token := range Tokens(input) {
		lastLine = lno
		switch token.Kind {
		case Error:
			return nil, &GrammarError{Lno: lno, Msg: token.Content}

		case Group:
			current = newSettingsGroup(token.Content, lno)
			if _, replaced := groups.Set(current.name, current); replaced {
				logger.Warn("group redefined, earlier settings discarded",
					slog.String("group", current.name), slog.Int("line", lno))
			}

		case Key:
			key = token.Content

		case Value:
			if current == nil {
				logger.Warn("setting outside of any group ignored",
					slog.String("setting", key), slog.Int("line", lno))
				continue
			}
			raw, isArray := classifyValue(token.Content)
			if current.put(newSetting(key, raw, isArray, lno)) {
				logger.Warn("setting redefined",
					slog.String("group", current.name), slog.String("setting", key), slog.Int("line", lno))
			}
			settings++

		case Comment:
		}
	}

	logger.Debug("parsed configuration",
		slog.Int("lines", lastLine), slog.Int("groups", groups.Len()), slog.Int("settings", settings))
	return groups, nil
}

// Save writes f to the file at path, replacing it. Nothing is validated:
// the raw value of every setting is written as is, and characters the
// chosen encoding cannot represent are replaced.
//
// The new contents are written to a temporary file next to path and
// renamed over it, so a failed save leaves any existing file untouched.
func (f *ConfigFile) Save(path string, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	w := o.encode(&buf)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}

	if err := replaceFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// replaceFile atomically replaces the file at path with data, keeping the
// permissions of the file it replaces.
func replaceFile(path string, data []byte) (err error) {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Len returns the number of groups.
func (f *ConfigFile) Len() int { return f.groups.Len() }

// SettingsGroup looks up a group by name.
func (f *ConfigFile) SettingsGroup(name string) (*SettingsGroup, bool) {
	return f.groups.Get(name)
}

// SettingsGroups iterates over the groups in file order.
func (f *ConfigFile) SettingsGroups() iter.Seq2[string, *SettingsGroup] {
	return func(yield func(string, *SettingsGroup) bool) {
		for pair := f.groups.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// AddSettingsGroup adds an empty group to the end of the file.
// It returns a [*DuplicateGroupError] if the name is already in use.
func (f *ConfigFile) AddSettingsGroup(name string) (*SettingsGroup, error) {
	if _, ok := f.groups.Get(name); ok {
		return nil, &DuplicateGroupError{Name: name}
	}
	g := newSettingsGroup(name, 0)
	f.groups.Set(name, g)
	return g, nil
}

// DeleteSettingsGroup removes the named group. It does nothing if there is
// no such group.
func (f *ConfigFile) DeleteSettingsGroup(name string) {
	f.groups.Delete(name)
}
