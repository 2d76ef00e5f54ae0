package catalog

import (
	"sort"
	"sync"

	"github.com/curtisnewbie/dating/util/dlog"
	"github.com/curtisnewbie/dating/util/hash"
	"golang.org/x/text/language"
)

// Multi-locale catalog.
//
// Lookups use the current locale, falling back to its parent locales (en-GB -> en) and finally the default locale.
// All methods are safe for concurrent use, changes are visible to the next lookup.
type Locales struct {
	mu      sync.RWMutex
	tables  map[language.Tag]Table
	tags    []language.Tag
	matcher language.Matcher
	current language.Tag
	def     language.Tag
}

// Create empty Locales, defaultLocale is both the initial current locale and the last fallback.
func NewLocales(defaultLocale string) (*Locales, error) {
	tag, err := parseTag(defaultLocale)
	if err != nil {
		return nil, err
	}
	return &Locales{
		tables:  map[language.Tag]Table{},
		current: tag,
		def:     tag,
	}, nil
}

func parseTag(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, ErrUnknownLocale.Wrapf(err, "locale: '%v'", locale)
	}
	return tag, nil
}

// Put pattern for locale.
func (l *Locales) Put(locale string, cat Category, key string, pattern string) error {
	tag, err := parseTag(locale)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tableLocked(tag).Put(cat, key, pattern)
	return nil
}

// Merge all patterns in t into locale.
func (l *Locales) PutTable(locale string, t Table) error {
	tag, err := parseTag(locale)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	tb := l.tableLocked(tag)
	for c, m := range t {
		for k, p := range m {
			tb.Put(c, k, p)
		}
	}
	return nil
}

func (l *Locales) tableLocked(tag language.Tag) Table {
	t, ok := l.tables[tag]
	if !ok {
		t = Table{}
		l.tables[tag] = t
		l.tags = append(l.tags, tag)
		l.matcher = language.NewMatcher(l.tags)
	}
	return t
}

// Switch current locale, the locale is matched against the available ones, e.g., "en-US" matches "en".
func (l *Locales) SetLocale(locale string) error {
	tag, err := parseTag(locale)
	if err != nil {
		return err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.matcher == nil {
		return ErrUnknownLocale.WithInternalMsg("no locale available, requested: '%v'", locale)
	}
	_, idx, conf := l.matcher.Match(tag)
	if conf == language.No {
		return ErrUnknownLocale.WithInternalMsg("locale '%v' is not available, available: %v", locale, l.tags)
	}
	if l.current != l.tags[idx] {
		dlog.Debugf("Catalog locale changed from '%v' to '%v' (requested: '%v')", l.current, l.tags[idx], locale)
	}
	l.current = l.tags[idx]
	return nil
}

// Current locale.
func (l *Locales) Locale() language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// Available locales, in the order they were added.
func (l *Locales) Available() []language.Tag {
	l.mu.RLock()
	defer l.mu.RUnlock()
	cp := make([]language.Tag, len(l.tags))
	copy(cp, l.tags)
	return cp
}

func (l *Locales) LookupPattern(cat Category, key string) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, tag := range l.chainLocked() {
		if p, ok := l.tables[tag].Get(cat, key); ok {
			return p, nil
		}
	}
	return "", ErrMissingFormat.WithInternalMsg("no pattern for '%v.formats.%v' in locale '%v'", cat, key, l.current)
}

// Format keys visible from current locale, including the ones inherited from fallback locales.
func (l *Locales) Formats(cat Category) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := hash.NewSet[string]()
	for _, tag := range l.chainLocked() {
		for k := range l.tables[tag][cat] {
			keys.Add(k)
		}
	}
	sorted := keys.CopyKeys()
	sort.Strings(sorted)
	return sorted
}

// current locale, its parents, then default locale and its parents
func (l *Locales) chainLocked() []language.Tag {
	chain := []language.Tag{}
	seen := hash.NewSet[language.Tag]()
	for _, start := range []language.Tag{l.current, l.def} {
		for t := start; ; t = t.Parent() {
			if seen.Add(t) {
				chain = append(chain, t)
			}
			if t == language.Und {
				break
			}
		}
	}
	return chain
}
