package classification

import (
	"testing"

	"github.com/lox/rangecount/poker"
)

// Helper function to parse card strings for tests
func parseCards(s string) poker.Hand {
	return poker.NewHand(poker.MustParseCards(s)...)
}

func TestDrawKindNames(t *testing.T) {
	tests := []struct {
		kind  DrawKind
		name  string
		short string
		key   string
	}{
		{FlushDraw, "flush draw", "FD", "flush_draw"},
		{OpenEndedStraightDraw, "open-ended straight draw", "OESD", "oesd"},
		{Gutshot, "gutshot", "Gutshot", "gutshot"},
		{BackdoorFlushDraw, "backdoor flush draw", "BDFD", "backdoor_flush_draw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %v, want %v", got, tt.name)
			}
			if got := tt.kind.Short(); got != tt.short {
				t.Errorf("Short() = %v, want %v", got, tt.short)
			}
			if got := tt.kind.Key(); got != tt.key {
				t.Errorf("Key() = %v, want %v", got, tt.key)
			}
		})
	}
}

func TestDetectDraws(t *testing.T) {
	tests := []struct {
		name  string
		hole  string
		board string
		want  []DrawKind
	}{
		{
			name:  "three hearts on the flop is backdoor only",
			hole:  "AhKh",
			board: "Qh2c3d",
			want:  []DrawKind{BackdoorFlushDraw},
		},
		{
			name:  "four hearts is a flush draw",
			hole:  "AhKh",
			board: "Qh7h2c",
			want:  []DrawKind{FlushDraw},
		},
		{
			name:  "five hearts is a made flush, not a draw",
			hole:  "AhKh",
			board: "Qh7h2h",
			want:  nil,
		},
		{
			name:  "open ender",
			hole:  "9c8d",
			board: "7h6s2c",
			want:  []DrawKind{OpenEndedStraightDraw, Gutshot},
		},
		{
			name:  "gutshot only",
			hole:  "9c8d",
			board: "6h5s2c",
			want:  []DrawKind{Gutshot},
		},
		{
			name:  "wheel draw counts the ace low",
			hole:  "Ah2d",
			board: "3c4s9h",
			want:  []DrawKind{OpenEndedStraightDraw, Gutshot},
		},
		{
			name:  "made broadway still holds the runs",
			hole:  "AhKd",
			board: "QcJsTh",
			want:  []DrawKind{OpenEndedStraightDraw, Gutshot},
		},
		{
			name:  "backdoor needs the flop",
			hole:  "AhKh",
			board: "Qh2c3d9s",
			want:  nil,
		},
		{
			name:  "flush draw on the river",
			hole:  "AhKh",
			board: "Qh7h2c9s5d",
			want:  []DrawKind{FlushDraw},
		},
		{
			name:  "nothing",
			hole:  "2c7d",
			board: "9hJsKc",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := poker.MustParseCards(tt.board)
			got := DetectDraws(parseCards(tt.hole)|poker.NewHand(board...), len(board))

			var want DrawSet
			for _, k := range tt.want {
				want = want.With(k)
			}
			if got != want {
				t.Errorf("DetectDraws(%s, %s) = %v, want %v", tt.hole, tt.board, got, want)
			}
		})
	}
}

func TestFlushDrawBoundary(t *testing.T) {
	three := parseCards("AhKhQh2c3d")
	four := parseCards("AhKhQh7h2c")

	if HasFlushDraw(three) {
		t.Error("three of a suit should not be a flush draw")
	}
	if !HasBackdoorFlushDraw(three, 3) {
		t.Error("three of a suit on the flop should be a backdoor flush draw")
	}
	if !HasFlushDraw(four) {
		t.Error("four of a suit should be a flush draw")
	}
	if HasBackdoorFlushDraw(four, 3) {
		t.Error("four of a suit should not be a backdoor flush draw")
	}
	if HasBackdoorFlushDraw(three, 4) {
		t.Error("backdoor flush draws only exist on the flop")
	}
}

func TestStraightPresence(t *testing.T) {
	p := straightPresence(parseCards("Ac2d"))
	if p != 1<<1|1<<2|1<<14 {
		t.Errorf("straightPresence = %016b", p)
	}
}

func TestDrawSetString(t *testing.T) {
	if got := DrawSet(0).String(); got != "no draw" {
		t.Errorf("empty set = %q", got)
	}
	s := DrawSet(0).With(Gutshot).With(FlushDraw)
	if got := s.String(); got != "flush draw, gutshot" {
		t.Errorf("String() = %q", got)
	}
	if len(s.Kinds()) != 2 {
		t.Errorf("Kinds() = %v", s.Kinds())
	}
}

func BenchmarkDetectDraws(b *testing.B) {
	cards := parseCards("9c8dQh7h6s")
	for b.Loop() {
		DetectDraws(cards, 3)
	}
}
