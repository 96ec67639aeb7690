package pagecheck

import (
	"regexp"
	"sort"
)

// Pattern locates one named region of a page.
type Pattern struct {
	// Region is the name fragments matched by this pattern are grouped under.
	Region string `json:"region" yaml:"region"`

	// Expr is a regular expression with at least one capture group. Every
	// group of every match is a separate capture. Expressions are matched
	// case-insensitively and "." also matches newlines.
	Expr string `json:"expr" yaml:"expr"`

	// Selector is an optional CSS selector for DOM-based extractors. The
	// inner HTML of each matched element is one capture.
	Selector string `json:"selector,omitempty" yaml:"selector,omitempty"`
}

// PatternSet is an ordered, named list of region patterns.
type PatternSet struct {
	Name     string    `json:"name" yaml:"name"`
	Patterns []Pattern `json:"patterns" yaml:"patterns"`
}

// Validate returns an error if the pattern set cannot be used for extraction.
func (s *PatternSet) Validate() error {
	if s.Name == "" {
		return Errorf(EINVALID, "pattern set name required")
	}
	if len(s.Patterns) == 0 {
		return Errorf(EINVALID, "pattern set %q has no patterns", s.Name)
	}
	for i, p := range s.Patterns {
		if p.Region == "" {
			return Errorf(EINVALID, "pattern %d in %q: region required", i, s.Name)
		}
		if p.Expr == "" {
			return Errorf(EINVALID, "pattern %q in %q: expression required", p.Region, s.Name)
		}
		re, err := regexp.Compile(p.Expr)
		if err != nil {
			return Errorf(EINVALID, "pattern %q in %q: %v", p.Region, s.Name, err)
		}
		if re.NumSubexp() == 0 {
			return Errorf(EINVALID, "pattern %q in %q: expression has no capture group", p.Region, s.Name)
		}
	}
	return nil
}

// Regions returns the distinct region names of the set in pattern order.
func (s *PatternSet) Regions() []string {
	seen := make(map[string]bool)
	var names []string
	for _, p := range s.Patterns {
		if seen[p.Region] {
			continue
		}
		seen[p.Region] = true
		names = append(names, p.Region)
	}
	return names
}

// Built-in pattern set names.
const (
	PatternSetContent  = "content"
	PatternSetSections = "sections"
)

// ContentPatternSet returns the pattern set for the hotel landing page
// layout: section descriptions plus the first paragraph of every feature,
// menu, news, room and about block.
func ContentPatternSet() PatternSet {
	return PatternSet{
		Name: PatternSetContent,
		Patterns: []Pattern{
			{
				Region:   "descriptions",
				Expr:     `<p class="section__description">(.*?)</p>`,
				Selector: "p.section__description",
			},
			{
				Region:   "feature_cards",
				Expr:     `<div class="feature__card">.*?<p>(.*?)</p>`,
				Selector: "div.feature__card p:first-of-type",
			},
			{
				Region:   "menu_items",
				Expr:     `<div class="menu__details">.*?<p>(.*?)</p>`,
				Selector: "div.menu__details p:first-of-type",
			},
			{
				Region:   "news_content",
				Expr:     `<div class="news__card">.*?<p>(.*?)</p>`,
				Selector: "div.news__card p:first-of-type",
			},
			{
				Region:   "room_descriptions",
				Expr:     `<div class="room__card__details">.*?<p>(.*?)</p>`,
				Selector: "div.room__card__details p:first-of-type",
			},
			{
				Region:   "about_content",
				Expr:     `<div class="about__content">.*?<p class="section__description">(.*?)</p>`,
				Selector: "div.about__content p.section__description",
			},
		},
	}
}

// SectionsPatternSet returns the broader pattern set that also pairs every
// h4 heading with the paragraph following it. Both the heading and the
// paragraph become fragments.
func SectionsPatternSet() PatternSet {
	return PatternSet{
		Name: PatternSetSections,
		Patterns: []Pattern{
			{
				Region:   "descriptions",
				Expr:     `<p class="section__description">(.*?)</p>`,
				Selector: "p.section__description",
			},
			{
				Region: "headings",
				Expr:   `<h4>(.*?)</h4>.*?<p>(.*?)</p>`,
			},
			{
				Region:   "feature_cards",
				Expr:     `class="feature__card">.*?<p>(.*?)</p>`,
				Selector: ".feature__card p:first-of-type",
			},
			{
				Region:   "menu_items",
				Expr:     `class="menu__details">.*?<p>(.*?)</p>`,
				Selector: ".menu__details p:first-of-type",
			},
			{
				Region:   "news_content",
				Expr:     `class="news__card">.*?<p>(.*?)</p>`,
				Selector: ".news__card p:first-of-type",
			},
		},
	}
}

var builtinPatternSets = map[string]func() PatternSet{
	PatternSetContent:  ContentPatternSet,
	PatternSetSections: SectionsPatternSet,
}

// FindPatternSet returns the built-in pattern set with the given name.
// Returns ENOTFOUND if no such set exists.
func FindPatternSet(name string) (PatternSet, error) {
	fn, ok := builtinPatternSets[name]
	if !ok {
		return PatternSet{}, Errorf(ENOTFOUND, "pattern set %q not found", name)
	}
	return fn(), nil
}

// PatternSetNames returns the names of all built-in pattern sets, sorted.
func PatternSetNames() []string {
	names := make([]string, 0, len(builtinPatternSets))
	for name := range builtinPatternSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
