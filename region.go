package pagecheck

import (
	"bytes"
	"encoding/json"
	"unicode/utf8"
)

// Capture is the raw markup captured for a region by one pattern group.
type Capture struct {
	Region string
	Markup string
}

// Region is a named area of a page and its cleaned text fragments in
// document order.
type Region struct {
	Name      string
	Fragments []string
}

// RegionMap is an ordered mapping from region name to fragments. Regions
// appear in the order their patterns were declared.
type RegionMap []Region

// Get returns the fragments of the named region, or nil if absent.
func (m RegionMap) Get(name string) []string {
	for _, r := range m {
		if r.Name == name {
			return r.Fragments
		}
	}
	return nil
}

// FragmentCount returns the total number of fragments across all regions.
func (m RegionMap) FragmentCount() int {
	var n int
	for _, r := range m {
		n += len(r.Fragments)
	}
	return n
}

// MarshalJSON encodes the map as a JSON object whose keys keep region order.
func (m RegionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(r.Name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		fragments := r.Fragments
		if fragments == nil {
			fragments = []string{}
		}
		val, err := marshalNoEscape(fragments)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without escaping <, > and &, which are common
// in page text.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Cleaner turns captured markup into plain text: nested tags removed,
// entities decoded, whitespace collapsed and trimmed.
type Cleaner interface {
	Clean(markup string) string
}

// Extractor pulls the named content regions out of a page.
type Extractor interface {
	// Extract matches the extractor's patterns against html and returns the
	// cleaned fragments of every region with at least one fragment.
	// On failure the returned map is empty, never nil-with-data.
	Extract(html string) (RegionMap, error)
}

// BuildRegionMap cleans captures and groups them by region. Fragments whose
// length in characters is not greater than minLength are dropped, as are
// regions left without fragments. Region order follows the first capture
// of each region; the order argument, when given, takes precedence.
func BuildRegionMap(captures []Capture, cleaner Cleaner, minLength int, order ...string) RegionMap {
	index := make(map[string]int)
	var m RegionMap
	for _, name := range order {
		if _, ok := index[name]; ok {
			continue
		}
		index[name] = len(m)
		m = append(m, Region{Name: name})
	}

	for _, c := range captures {
		text := cleaner.Clean(c.Markup)
		if utf8.RuneCountInString(text) <= minLength {
			continue
		}
		i, ok := index[c.Region]
		if !ok {
			i = len(m)
			index[c.Region] = i
			m = append(m, Region{Name: c.Region})
		}
		m[i].Fragments = append(m[i].Fragments, text)
	}

	out := make(RegionMap, 0, len(m))
	for _, r := range m {
		if len(r.Fragments) > 0 {
			out = append(out, r)
		}
	}
	return out
}
