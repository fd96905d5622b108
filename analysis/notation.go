package analysis

import (
	"strings"
	"unicode"

	"github.com/lox/rangecount/poker"
)

// ParseRange parses free-form range notation such as "22+, A2s+, KTo+, T9s-87s".
// Parsing is permissive: unrecognised tokens contribute nothing and never
// cause an error.
func ParseRange(text string) Range {
	r, _ := ParseRangeReport(text)
	return r
}

// ParseRangeReport parses like ParseRange and also returns, in input order,
// the normalised tokens that produced no labels.
func ParseRangeReport(text string) (Range, []string) {
	var r Range
	var skipped []string
	for _, tok := range strings.Split(normalizeRange(text), ",") {
		if tok == "" {
			continue
		}
		labels := expandToken(tok)
		if len(labels) == 0 {
			skipped = append(skipped, tok)
			continue
		}
		for _, l := range labels {
			r.Add(l)
		}
	}
	return r, skipped
}

// normalizeRange uppercases, strips whitespace and inserts a comma wherever
// a complete token (rank rank [S|O] [+]) runs straight into the next rank,
// so "AKs+QQ+" reads as "AKS+,QQ+".
func normalizeRange(raw string) string {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsSpace(r) {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	s := sb.String()

	var out strings.Builder
	for i := 0; i < len(s); {
		if n := tokenHeadLen(s[i:]); n > 0 && i+n < len(s) && isRankChar(s[i+n]) {
			out.WriteString(s[i : i+n])
			out.WriteByte(',')
			i += n
			continue
		}
		out.WriteByte(s[i])
		i++
	}
	return out.String()
}

// tokenHeadLen returns the length of a rank-rank[S|O][+] prefix, or 0.
func tokenHeadLen(s string) int {
	if len(s) < 2 || !isRankChar(s[0]) || !isRankChar(s[1]) {
		return 0
	}
	n := 2
	if n < len(s) && (s[n] == 'S' || s[n] == 'O') {
		n++
	}
	if n < len(s) && s[n] == '+' {
		n++
	}
	return n
}

func isRankChar(c byte) bool {
	return strings.IndexByte("23456789TJQKA", c) >= 0
}

// tokenForm is one production of the range grammar. match reports whether
// the token has this form and, if so, the labels it expands to.
type tokenForm struct {
	name  string
	match func(tok string) ([]Label, bool)
}

// tokenGrammar is tried in order; the first form that matches wins.
var tokenGrammar = []tokenForm{
	{"pair-plus", matchPairPlus},
	{"pair", matchPair},
	{"pair-range", matchPairRange},
	{"kicker-range", matchKickerRange},
	{"suited-plus", matchSuitedPlus},
	{"suited", matchSuited},
	{"diagonal-range", matchDiagonalRange},
}

// expandToken expands one normalised token. Unmatched tokens expand to nothing.
func expandToken(tok string) []Label {
	for _, form := range tokenGrammar {
		if labels, ok := form.match(tok); ok {
			return labels
		}
	}
	return nil
}

// handToken is a two-rank token with a suited/offsuit marker, ranks kept in
// the order written.
type handToken struct {
	first, second poker.Rank
	kind          Kind
}

func parsePairToken(s string) (poker.Rank, bool) {
	if len(s) != 2 || s[0] != s[1] {
		return 0, false
	}
	return poker.ParseRank(s[0])
}

func parseHandToken(s string) (handToken, bool) {
	if len(s) != 3 {
		return handToken{}, false
	}
	a, okA := poker.ParseRank(s[0])
	b, okB := poker.ParseRank(s[1])
	if !okA || !okB {
		return handToken{}, false
	}
	var kind Kind
	switch s[2] {
	case 'S':
		kind = Suited
	case 'O':
		kind = Offsuit
	default:
		return handToken{}, false
	}
	return handToken{first: a, second: b, kind: kind}, true
}

// appendLabel appends the canonical label for a, b if it is a valid cell.
func appendLabel(out []Label, a, b poker.Rank, kind Kind) []Label {
	if l, ok := NewLabel(a, b, kind); ok {
		out = append(out, l)
	}
	return out
}

// "77+": the pair and every higher pair.
func matchPairPlus(tok string) ([]Label, bool) {
	if len(tok) != 3 || tok[2] != '+' {
		return nil, false
	}
	r, ok := parsePairToken(tok[:2])
	if !ok {
		return nil, false
	}
	var out []Label
	for x := r; x <= poker.Ace; x++ {
		out = appendLabel(out, x, x, PairKind)
	}
	return out, true
}

// "QQ"
func matchPair(tok string) ([]Label, bool) {
	r, ok := parsePairToken(tok)
	if !ok {
		return nil, false
	}
	return appendLabel(nil, r, r, PairKind), true
}

// "22-99" or "99-22": every pair between the two, inclusive.
func matchPairRange(tok string) ([]Label, bool) {
	if len(tok) != 5 || tok[2] != '-' {
		return nil, false
	}
	from, okFrom := parsePairToken(tok[:2])
	to, okTo := parsePairToken(tok[3:])
	if !okFrom || !okTo {
		return nil, false
	}
	var out []Label
	for x := min(from, to); x <= max(from, to); x++ {
		out = appendLabel(out, x, x, PairKind)
	}
	return out, true
}

// "A2s-A9s": first rank and marker identical on both sides, second rank
// ranging inclusively between the two given kickers.
func matchKickerRange(tok string) ([]Label, bool) {
	if len(tok) != 7 || tok[3] != '-' {
		return nil, false
	}
	from, okFrom := parseHandToken(tok[:3])
	to, okTo := parseHandToken(tok[4:])
	if !okFrom || !okTo || from.first != to.first || from.kind != to.kind {
		return nil, false
	}
	var out []Label
	for k := min(from.second, to.second); k <= max(from.second, to.second); k++ {
		out = appendLabel(out, from.first, k, from.kind)
	}
	return out, true
}

// "A2s+", "KTo+", "97s+". With an Ace the kicker climbs to King; with a
// T-K high card the kicker climbs to one below it; otherwise the gap is
// held and both ranks climb together until the high rank reaches Ace.
func matchSuitedPlus(tok string) ([]Label, bool) {
	if len(tok) != 4 || tok[3] != '+' {
		return nil, false
	}
	h, ok := parseHandToken(tok[:3])
	if !ok || h.first == h.second {
		return nil, false
	}
	hi, lo := max(h.first, h.second), min(h.first, h.second)

	var out []Label
	switch {
	case hi == poker.Ace:
		for k := lo; k <= poker.King; k++ {
			out = appendLabel(out, hi, k, h.kind)
		}
	case hi >= poker.Ten:
		for k := lo; k < hi; k++ {
			out = appendLabel(out, hi, k, h.kind)
		}
	default:
		gap := hi - lo
		for top := hi; top <= poker.Ace; top++ {
			out = appendLabel(out, top, top-gap, h.kind)
		}
	}
	return out, true
}

// "AJs", "KQo", "JAs" (ranks in either order).
func matchSuited(tok string) ([]Label, bool) {
	h, ok := parseHandToken(tok)
	if !ok || h.first == h.second {
		return nil, false
	}
	return appendLabel(nil, h.first, h.second, h.kind), true
}

// "T9s-87s": both endpoints share a marker and a gap; every hand on that
// diagonal between them is included, in either order. Endpoints with
// different gaps do not lie on one diagonal and expand to nothing.
func matchDiagonalRange(tok string) ([]Label, bool) {
	if len(tok) != 7 || tok[3] != '-' {
		return nil, false
	}
	from, okFrom := parseHandToken(tok[:3])
	to, okTo := parseHandToken(tok[4:])
	if !okFrom || !okTo || from.kind != to.kind {
		return nil, false
	}
	a, okA := NewLabel(from.first, from.second, from.kind)
	b, okB := NewLabel(to.first, to.second, to.kind)
	if !okA || !okB || a.High-a.Low != b.High-b.Low {
		return nil, true
	}

	gap := a.High - a.Low
	var out []Label
	for top := min(a.High, b.High); top <= max(a.High, b.High); top++ {
		out = appendLabel(out, top, top-gap, a.Kind)
	}
	return out, true
}
