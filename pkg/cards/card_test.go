package cards

import (
	"math/rand"
	"testing"
)

func TestCardEncoding(t *testing.T) {
	tests := []struct {
		card Card
		rank int
		suit int
		str  string
	}{
		{0, 0, 0, "2c"},
		{12, 12, 0, "Ac"},
		{13, 0, 1, "2d"},
		{25, 12, 1, "Ad"},
		{26, 0, 2, "2h"},
		{39, 0, 3, "2s"},
		{51, 12, 3, "As"},
	}
	for _, tt := range tests {
		if got := tt.card.Rank(); got != tt.rank {
			t.Errorf("Card(%d).Rank() = %d, want %d", tt.card, got, tt.rank)
		}
		if got := tt.card.Suit(); got != tt.suit {
			t.Errorf("Card(%d).Suit() = %d, want %d", tt.card, got, tt.suit)
		}
		if got := tt.card.String(); got != tt.str {
			t.Errorf("Card(%d).String() = %q, want %q", tt.card, got, tt.str)
		}
	}
}

func TestParseCardRoundTrip(t *testing.T) {
	for c := Card(0); c < NumCards; c++ {
		parsed, err := ParseCard(c.String())
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("round trip mismatch: %d -> %q -> %d", c, c.String(), parsed)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	for _, s := range []string{"", "A", "Axx", "1s", "Az"} {
		if _, err := ParseCard(s); err == nil {
			t.Errorf("ParseCard(%q) expected error, got nil", s)
		}
	}
}

func TestSortedKeyOrdersCanonically(t *testing.T) {
	a := mustCards(t, "AcKh")
	b := mustCards(t, "KhAc")
	if SortedKey(a) != SortedKey(b) {
		t.Errorf("SortedKey should be order-independent: %q vs %q", SortedKey(a), SortedKey(b))
	}
}

func TestDeckDealsWithoutDuplicates(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	seen := make(map[Card]bool)
	for d.Remaining() > 0 {
		for _, c := range d.Deal(1) {
			if seen[c] {
				t.Fatalf("card %v dealt twice", c)
			}
			seen[c] = true
		}
	}
	if len(seen) != NumCards {
		t.Fatalf("dealt %d distinct cards, want %d", len(seen), NumCards)
	}
}

func TestDeckDealPanicsWhenExhausted(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(1)))
	d.Deal(52)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic dealing from an exhausted deck")
		}
	}()
	d.Deal(1)
}

func TestDeckCloneIsIndependent(t *testing.T) {
	d := NewDeck(rand.New(rand.NewSource(42)))
	clone := d.Clone()
	d.Deal(5)
	if clone.Remaining() != NumCards {
		t.Errorf("clone should be unaffected by dealing on the original, remaining=%d", clone.Remaining())
	}
}
