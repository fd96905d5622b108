package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelsOf(t *testing.T, r Range) []string {
	t.Helper()
	var out []string
	for _, l := range r.Labels() {
		out = append(out, l.String())
	}
	return out
}

func TestParseRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"pair plus", "77+", []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77"}},
		{"top pair plus", "AA+", []string{"AA"}},
		{"single pair", "QQ", []string{"QQ"}},
		{"pair range", "22-55", []string{"55", "44", "33", "22"}},
		{"pair range reversed", "55-22", []string{"55", "44", "33", "22"}},
		{"ace suited plus", "A2s+", []string{
			"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		}},
		{"broadway offsuit plus", "KTo+", []string{"KQo", "KJo", "KTo"}},
		{"face suited plus", "QTs+", []string{"QJs", "QTs"}},
		{"jack offsuit plus", "J9o+", []string{"JTo", "J9o"}},
		{"gapper plus", "97s+", []string{"AQs", "KJs", "QTs", "J9s", "T8s", "97s"}},
		{"diagonal range", "T9s-87s", []string{"T9s", "98s", "87s"}},
		{"diagonal range reversed", "87s-T9s", []string{"T9s", "98s", "87s"}},
		{"diagonal across high card", "AKs-KQs", []string{"AKs", "KQs"}},
		{"kicker range", "A2s-A5s", []string{"A5s", "A4s", "A3s", "A2s"}},
		{"kicker range reversed", "A5s-A2s", []string{"A5s", "A4s", "A3s", "A2s"}},
		{"offsuit kicker range", "KTo-KQo", []string{"KQo", "KJo", "KTo"}},
		{"single suited", "AJs", []string{"AJs"}},
		{"ranks reversed", "JAs", []string{"AJs"}},
		{"lowercase", "aks, qq", []string{"AKs", "QQ"}},
		{"missing commas", "AKsQQ+", []string{"AA", "AKs", "KK", "QQ"}},
		{"whitespace", " a k s ,\tq q ", []string{"AKs", "QQ"}},
		{"trailing comma", "99+,A3s,", []string{"AA", "A3s", "KK", "QQ", "JJ", "TT", "99"}},
		{"duplicates", "AKs, AKs, A2s+", []string{
			"AKs", "AQs", "AJs", "ATs", "A9s", "A8s", "A7s", "A6s", "A5s", "A4s", "A3s", "A2s",
		}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := ParseRange(tt.input)
			assert.ElementsMatch(t, tt.want, labelsOf(t, got))
		})
	}
}

func TestParseRangeConnectorsPlus(t *testing.T) {
	t.Parallel()
	r := ParseRange("54s+")
	assert.Equal(t, 10, r.Len())
	assert.True(t, r.Contains(MustLabel("AKs")))
	assert.True(t, r.Contains(MustLabel("54s")))
	assert.False(t, r.Contains(MustLabel("43s")))

	assert.Equal(t, 12, ParseRange("A2o+").Len())
	assert.Equal(t, 12, ParseRange("32s+").Len())
}

func TestParseRangeReportSkipsGarbage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       string
		want        []string
		wantSkipped []string
	}{
		{"unknown token", "XYZ, AA", []string{"AA"}, []string{"XYZ"}},
		{"pair with marker", "AAs, KK", []string{"KK"}, []string{"AAS"}},
		{"no marker", "AK", nil, []string{"AK"}},
		{"run together without markers", "AKQJ", nil, []string{"AK", "QJ"}},
		{"mismatched diagonal", "T9s-86s", nil, []string{"T9S-86S"}},
		{"mixed markers", "AKs-QJo", nil, []string{"AKS-QJO"}},
		{"all good", "22+", []string{"AA", "KK", "QQ", "JJ", "TT", "99", "88", "77", "66", "55", "44", "33", "22"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, skipped := ParseRangeReport(tt.input)
			assert.ElementsMatch(t, tt.want, labelsOf(t, r))
			assert.Equal(t, tt.wantSkipped, skipped)
		})
	}
}

func TestParseRangeRoundTrip(t *testing.T) {
	t.Parallel()
	inputs := []string{
		"22+, A2s+, K9s+, Q9s+, J9s+, T8s+, 97s+, 87s, 76s, 65s, A8o+, KTo+, QTo+, JTo",
		"77+, A9s+, KTs+, QTs+, JTs, ATo+, KJo+",
		"T9s-54s, A5s-A2s, 99-55",
		"",
	}
	for _, in := range inputs {
		first := ParseRange(in)
		second := ParseRange(first.String())
		assert.Equal(t, first, second, "round trip of %q", in)
		assert.Equal(t, first, ParseRange(second.String()))
	}

	full := FullRange()
	assert.Equal(t, full, ParseRange(full.String()))
}

func TestNormalizeRange(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  string
	}{
		{"aks+qq+", "AKS+,QQ+"},
		{"AKsQQ", "AKS,QQ"},
		{"T9s-87s", "T9S-87S"},
		{"22 - 55", "22-55"},
		{"A2s+,KTo", "A2S+,KTO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeRange(tt.input), "input %q", tt.input)
	}
}

func TestTokenGrammarOrder(t *testing.T) {
	t.Parallel()
	var names []string
	for _, f := range tokenGrammar {
		names = append(names, f.name)
	}
	require.Equal(t, []string{
		"pair-plus", "pair", "pair-range", "kicker-range", "suited-plus", "suited", "diagonal-range",
	}, names)
}
