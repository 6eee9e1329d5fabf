package fuzzyindex

import (
	"sort"
	"strings"
	"unicode"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/unicode/norm"
)

// tierSpan separates the match tiers on the score scale. Within-tier
// ranks are clamped below it so a worse tier never outranks a better
// one.
const tierSpan = 256

const (
	tierPrefix    = 0
	tierSubstring = 1
	tierFuzzy     = 2
)

type (
	// A Field is one searchable text of a document with its weight.
	// Higher weight ranks matches on this field better.
	Field struct {
		Text   string
		Weight float64
	}

	Document struct {
		ID     string
		Fields []Field
	}

	// A Match pairs a document ID with its score. Lower score is
	// better, this direction is used consistently everywhere.
	Match struct {
		ID    string
		Score float64
	}
)

type indexedField struct {
	folded string
	weight float64
}

type indexedDoc struct {
	id     string
	fields []indexedField
}

// Index is a weighted fuzzy-match structure. It is built once, never
// mutated afterward, and safe for concurrent Search calls.
type Index struct {
	docs []indexedDoc
}

// New builds an index over the documents. Fields with non-positive
// weight or empty text are not indexed. Document order is retained
// and used as the tie-break between equal scores.
func New(docs []Document) *Index {
	ix := &Index{docs: make([]indexedDoc, 0, len(docs))}
	for _, d := range docs {
		doc := indexedDoc{id: d.ID}
		for _, f := range d.Fields {
			if f.Weight <= 0 || f.Text == "" {
				continue
			}
			doc.fields = append(doc.fields, indexedField{
				folded: Fold(f.Text),
				weight: f.Weight,
			})
		}
		ix.docs = append(ix.docs, doc)
	}
	return ix
}

// Search returns the matching documents ordered by ascending score.
// An empty or whitespace-only query returns no matches, callers that
// mean "no query" must not call Search at all.
func (ix *Index) Search(query string) []Match {
	q := Fold(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []Match
	for _, d := range ix.docs {
		score, ok := d.score(q)
		if !ok {
			continue
		}
		out = append(out, Match{ID: d.id, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score < out[j].Score
	})
	return out
}

// score returns the best (lowest) field score for the folded query.
func (d indexedDoc) score(q string) (float64, bool) {
	best := 0.0
	found := false
	for _, f := range d.fields {
		s, ok := fieldScore(q, f)
		if !ok {
			continue
		}
		if !found || s < best {
			best = s
			found = true
		}
	}
	return best, found
}

func fieldScore(q string, f indexedField) (float64, bool) {
	var tier, rank int
	switch {
	case strings.HasPrefix(f.folded, q):
		tier, rank = tierPrefix, 0
	case strings.Contains(f.folded, q):
		tier, rank = tierSubstring, strings.Index(f.folded, q)
	default:
		r := fuzzy.RankMatch(q, f.folded)
		if r < 0 {
			return 0, false
		}
		tier, rank = tierFuzzy, r
	}

	if rank >= tierSpan {
		rank = tierSpan - 1
	}
	// +1 keeps scores positive so the weight division always
	// discriminates, a rank of zero would erase it.
	return float64(tier*tierSpan+rank+1) / f.weight, true
}

// Fold lowercases and strips combining marks, so matching tolerates
// case and accents.
func Fold(s string) string {
	s = strings.ToLower(s)
	t := norm.NFD.String(s)

	var b strings.Builder
	b.Grow(len(t))
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
