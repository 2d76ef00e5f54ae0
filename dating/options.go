package dating

import "strings"

const (
	DefaultFormat = "default"
	DefaultEnding = "as_text"
)

// Naming and format options of one registration call.
type FormatOptions struct {
	// Format key looked up in the catalog, "default" if empty.
	Format string

	// Ending appended to the attribute name, e.g., "ymd_text" for "born_on_ymd_text".
	Ending string

	// Explicit getter name, overrides Ending. Only valid when a single attribute is registered.
	Name string
}

type Option func(o *FormatOptions)

func WithFormat(key string) Option {
	return func(o *FormatOptions) {
		o.Format = key
	}
}

func WithEnding(ending string) Option {
	return func(o *FormatOptions) {
		o.Ending = ending
	}
}

func WithName(name string) Option {
	return func(o *FormatOptions) {
		o.Name = name
	}
}

func NewFormatOptions(opts ...Option) FormatOptions {
	var o FormatOptions
	for _, op := range opts {
		op(&o)
	}
	o.Format = strings.TrimSpace(o.Format)
	o.Ending = strings.TrimSpace(o.Ending)
	o.Name = strings.TrimSpace(o.Name)
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	return o
}

// Ending used when no explicit name is given.
//
//	"default" format -> "as_text"
//	"ymd" format     -> "as_ymd"
//
// An explicit Ending always wins.
func (o FormatOptions) ResolvedEnding() string {
	if o.Ending != "" {
		return o.Ending
	}
	if o.Format == "" || o.Format == DefaultFormat {
		return DefaultEnding
	}
	return "as_" + o.Format
}
