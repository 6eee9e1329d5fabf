package domain

import "strings"

// FilterState holds the visitor's current discovery selections: an
// optional active category slug and an optional free-text query.
// The zero value means no filters. It lives for one page visit,
// has a single writer and is mutated only by the methods below.
type FilterState struct {
	category string
	query    string
}

func (s *FilterState) SelectCategory(slug string) {
	s.category = slug
}

func (s *FilterState) ClearCategory() {
	s.category = ""
}

// SetQuery trims the raw input. A whitespace-only query clears the
// query axis.
func (s *FilterState) SetQuery(raw string) {
	s.query = strings.TrimSpace(raw)
}

func (s *FilterState) ClearQuery() {
	s.query = ""
}

// Clear resets both axes in one transition, so no caller observes a
// state where only one filter is cleared.
func (s *FilterState) Clear() {
	*s = FilterState{}
}

func (s FilterState) Category() (slug string, ok bool) {
	return s.category, s.category != ""
}

func (s FilterState) Query() (query string, ok bool) {
	return s.query, s.query != ""
}
