package dating

import (
	"strings"
	"time"

	"github.com/curtisnewbie/dating/catalog"
	"github.com/curtisnewbie/dating/util/atom"
	"github.com/curtisnewbie/dating/util/errs"
	"github.com/curtisnewbie/dating/zone"
)

// Converts stored values of one category to and from locale text.
//
// The pattern is looked up in the catalog on every conversion, changes made to the catalog
// (e.g., switching locale) are visible immediately.
type Codec struct {
	category catalog.Category
	format   string
	env      Env
}

func NewCodec(cat catalog.Category, format string, opts ...EnvOption) (*Codec, error) {
	if !cat.Valid() {
		return nil, errs.ErrIllegalArgument.WithInternalMsg("invalid category: %v", int(cat))
	}
	format = strings.TrimSpace(format)
	if format == "" {
		format = DefaultFormat
	}
	return newCodec(cat, format, NewEnv(opts...)), nil
}

func newCodec(cat catalog.Category, format string, env Env) *Codec {
	return &Codec{category: cat, format: format, env: env}
}

func (c *Codec) Category() catalog.Category {
	return c.category
}

func (c *Codec) Format() string {
	return c.format
}

// Resolve current pattern.
func (c *Codec) Pattern() (string, error) {
	return c.env.Catalog.LookupPattern(c.category, c.format)
}

// Encode stored value to text, absent values encode to "".
//
// Supported values are time.Time, *time.Time, sql.NullTime, *sql.NullTime, atom.Date and *atom.Date.
func (c *Codec) Encode(v any) (string, error) {
	val, present, err := normalizeValue(v)
	if err != nil || !present {
		return "", err
	}
	layout, err := c.Pattern()
	if err != nil {
		return "", err
	}

	if c.category == catalog.Date {
		return asDate(val).Format(layout), nil
	}
	return asInstant(val).In(c.env.location()).Format(layout), nil
}

// Decode text, "" decodes to nil.
//
// Date category returns atom.Date, Time and DateTime categories return time.Time in UTC.
func (c *Codec) Decode(text string) (any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	layout, err := c.Pattern()
	if err != nil {
		return nil, err
	}
	parsed, err := parseWallClock(layout, text)
	if err != nil {
		return nil, ErrParse.Wrapf(err, "'%v' does not match %v format '%v' (%v)", text, c.category, c.format, layout)
	}

	switch c.category {
	case catalog.Date:
		return atom.DateOf(parsed), nil
	case catalog.Time:
		loc := c.env.location()
		wc := zone.WallClockOf(parsed)
		if !layoutHasDate(layout) {
			wc = wc.WithDate(c.env.Now().In(loc).Date())
		}
		return zone.ToInstant(wc, loc), nil
	default:
		return zone.ToInstant(zone.WallClockOf(parsed), c.env.location()), nil
	}
}

// Decode text of Date category.
func (c *Codec) DecodeDate(text string) (*atom.Date, error) {
	v, err := c.Decode(text)
	if err != nil || v == nil {
		return nil, err
	}
	d := asDate(v)
	return &d, nil
}

// Decode text to instant, Date category decodes to midnight UTC.
func (c *Codec) DecodeInstant(text string) (*time.Time, error) {
	v, err := c.Decode(text)
	if err != nil || v == nil {
		return nil, err
	}
	t := asInstant(v)
	return &t, nil
}
