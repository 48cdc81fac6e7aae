// Package hotline holds the per-country emergency and crisis contact
// reference data rendered by the crisis alert and the country picker.
// The data is static, loaded once, and queried locally with no network
// round trip so it stays available mid-crisis.
package hotline

import "strings"

// Entry is one country's contact record. At least one of Emergency or Crisis
// is expected to be present, though this is not enforced.
type Entry struct {
	Key         string `json:"key"`
	Country     string `json:"country"`
	Emergency   string `json:"emergency,omitempty"`
	Crisis      string `json:"crisis,omitempty"`
	Service     string `json:"service,omitempty"`
	ReferralURL string `json:"referral_url,omitempty"`
}

// Directory is an immutable, ordered hotline table with an optional overlay
// applied at construction time.
type Directory struct {
	entries []Entry
	byKey   map[string]Entry
}

// NewDirectory builds the directory from the built-in table.
func NewDirectory() *Directory {
	return newFrom(directory)
}

// NewDirectoryWithOverlay merges extra entries (typically CMS-managed ones)
// over the built-in table. Overlay entries replace built-ins with the same
// key and otherwise append in their given order.
func NewDirectoryWithOverlay(overlay []Entry) *Directory {
	merged := make([]Entry, len(directory), len(directory)+len(overlay))
	copy(merged, directory)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.Key] = i
	}
	for _, e := range overlay {
		if e.Key == "" || e.Country == "" {
			continue
		}
		if i, ok := index[e.Key]; ok {
			merged[i] = e
			continue
		}
		index[e.Key] = len(merged)
		merged = append(merged, e)
	}
	return newFrom(merged)
}

func newFrom(entries []Entry) *Directory {
	byKey := make(map[string]Entry, len(entries))
	for _, e := range entries {
		byKey[e.Key] = e
	}
	return &Directory{entries: entries, byKey: byKey}
}

// All returns the full table in its stable order.
func (d *Directory) All() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// FindByCountry returns every entry whose country display name contains q,
// case-insensitively. An empty query returns the full table, which is what
// the interactive picker shows before the user types.
func (d *Directory) FindByCountry(q string) []Entry {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return d.All()
	}

	var out []Entry
	for _, e := range d.entries {
		if strings.Contains(strings.ToLower(e.Country), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Lookup returns the first entry matching q, or nil when nothing matches.
func (d *Directory) Lookup(q string) *Entry {
	matches := d.FindByCountry(strings.TrimSpace(q))
	if strings.TrimSpace(q) == "" || len(matches) == 0 {
		return nil
	}
	e := matches[0]
	return &e
}

// ByKey returns the entry for a country key.
func (d *Directory) ByKey(key string) (Entry, bool) {
	e, ok := d.byKey[key]
	return e, ok
}

// Fallback returns the always-available subset used by the crisis alert.
// It works without a Directory instance so callers can render it even when
// directory construction or its overlay failed.
func Fallback() []Entry {
	out := make([]Entry, len(fallback))
	copy(out, fallback)
	return out
}
