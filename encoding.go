package easyconfig

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// An Option configures how a file is read or written.
type Option func(*options)

type options struct {
	enc    encoding.Encoding
	err    error
	logger *slog.Logger
}

// WithEncoding reads and writes text in enc instead of UTF-8.
// A byte order mark at the start of the input still takes precedence.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.enc = enc
	}
}

// WithCharset is like [WithEncoding] but looks the encoding up by its MIME
// or IANA name, such as "iso-8859-1" or "windows-1252". Loading or saving
// fails if the name is not known.
func WithCharset(name string) Option {
	return func(o *options) {
		switch strings.ToLower(name) {
		case "", "us-ascii", "utf-8", "utf8":
			o.enc = nil
			return
		}
		enc, _ := ianaindex.MIME.Encoding(name)
		if enc == nil {
			enc, _ = ianaindex.IANA.Encoding(name)
		}
		if enc == nil {
			o.err = fmt.Errorf("unknown charset %q", name)
			return
		}
		o.enc = enc
	}
}

// WithLogger reports recoverable oddities found while loading (such as
// settings that appear before any group) to logger. By default nothing is
// logged.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) (*options, error) {
	o := &options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o, o.err
}

func (o *options) decode(r io.Reader) io.Reader {
	fallback := o.enc
	if fallback == nil {
		fallback = unicode.UTF8
	}
	return transform.NewReader(r, unicode.BOMOverride(fallback.NewDecoder()))
}

// encode returns a writer that encodes into w. Runes the encoding cannot
// represent are replaced rather than reported. The writer must be closed
// to flush it.
func (o *options) encode(w io.Writer) io.WriteCloser {
	if o.enc == nil {
		return nopCloser{w}
	}
	return transform.NewWriter(w, encoding.ReplaceUnsupported(o.enc.NewEncoder()))
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
