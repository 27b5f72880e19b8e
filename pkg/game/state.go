// Package game implements the abstracted heads-up pot-limit hold'em
// betting state machine: legal actions, pot-limit raise sizing, street
// transitions, and terminal utility.
package game

import (
	"math/rand"

	"github.com/nwilkes/hucfr/pkg/cards"
)

// Action is one of the three abstracted move codes.
type Action int

const (
	Fold      Action = 0
	CallCheck Action = 1
	Raise     Action = 2
)

func (a Action) String() string {
	switch a {
	case Fold:
		return "fold"
	case CallCheck:
		return "call/check"
	case Raise:
		return "raise"
	default:
		return "unknown"
	}
}

// glyph is the history-string character for each action, per the history
// grammar in spec §6: f fold, c call/check, r raise.
func (a Action) glyph() byte {
	switch a {
	case Fold:
		return 'f'
	case CallCheck:
		return 'c'
	case Raise:
		return 'r'
	default:
		return '?'
	}
}

// Stage is the current betting round.
type Stage int

const (
	Preflop  Stage = 0
	Flop     Stage = 1
	Turn     Stage = 2
	River    Stage = 3
	Showdown Stage = 4
)

// State represents a single heads-up hand. A State is exclusively owned
// while being advanced via Apply; CFR recursion clones it before branching
// into each child action.
type State struct {
	Deck *cards.Deck

	Board    [5]cards.Card
	BoardLen int // number of valid entries in Board (0, 3, 4, or 5)

	Hole [2][2]cards.Card

	Player  int
	Dealer  int
	Stage   Stage
	Pot     int
	ToCall  int
	Checked bool
	History string

	Terminal bool
	Winner   int // meaningful only when Terminal
}

// BoardCards returns the dealt community cards as a slice.
func (s *State) BoardCards() []cards.Card {
	return s.Board[:s.BoardLen]
}

// NewHand deals a fresh shuffled deck, posts blinds, and returns the
// initial state for a heads-up hand with the given small-blind/dealer
// seat. rng may be nil to use the package-level entropy source (spec §6:
// "if absent, a fresh entropy source per run").
func NewHand(dealer int, rng *rand.Rand) *State {
	deck := cards.NewDeck(rng)
	s := &State{
		Deck:    deck,
		Dealer:  dealer,
		Player:  dealer,
		Stage:   Preflop,
		Pot:     2,
		ToCall:  0,
		Checked: false,
		History: "",
		Winner:  -1,
	}
	s.Hole[0] = [2]cards.Card{deck.Deal(1)[0], 0}
	s.Hole[1] = [2]cards.Card{deck.Deal(1)[0], 0}
	s.Hole[0][1] = deck.Deal(1)[0]
	s.Hole[1][1] = deck.Deal(1)[0]
	return s
}

// Clone returns a deep, independent copy so that CFR can branch into
// multiple children from the same parent state.
func (s *State) Clone() *State {
	clone := *s
	clone.Deck = s.Deck.Clone()
	return &clone
}

// LegalActions returns the available action set, which depends only on
// ToCall (spec §4.2).
func (s *State) LegalActions() []Action {
	if s.ToCall > 0 {
		return []Action{Fold, CallCheck}
	}
	return []Action{CallCheck, Raise}
}

// Apply mutates the state in place according to the action's semantics
// (spec §4.2, §4.2.1). It panics if called on a terminal or showdown
// state, or with an action outside LegalActions(), both of which indicate
// caller bugs rather than recoverable conditions.
func (s *State) Apply(a Action) {
	if s.Terminal || s.Stage == Showdown {
		panic("game: Apply called on a terminal state")
	}
	if !legal(a, s.LegalActions()) {
		panic("game: Apply called with an illegal action")
	}

	s.History += string(a.glyph())

	switch a {
	case Fold:
		s.Terminal = true
		s.Winner = 1 - s.Player

	case Raise:
		bet := s.Pot + s.ToCall
		s.Pot += bet
		s.ToCall = bet
		s.Checked = false
		s.Player = 1 - s.Player

	case CallCheck:
		if s.ToCall > 0 {
			s.Pot += s.ToCall
			s.ToCall = 0
			s.advanceStreet()
			return
		}
		if !s.Checked {
			s.Checked = true
			s.Player = 1 - s.Player
			return
		}
		s.advanceStreet()
	}
}

func legal(a Action, legal []Action) bool {
	for _, la := range legal {
		if la == a {
			return true
		}
	}
	return false
}

// advanceStreet deals the next street's board cards (if any), resets the
// per-street betting state, and sets the first actor for the new street:
// the dealer acts first preflop, the non-dealer acts first on every
// subsequent street (spec §4.2.1, and the redesign-flag fix to the
// original's redundant conditional).
func (s *State) advanceStreet() {
	s.History += "|"
	switch s.Stage {
	case Preflop:
		s.dealBoard(3)
	case Flop:
		s.dealBoard(1)
	case Turn:
		s.dealBoard(1)
	case River:
		// river -> showdown, no further cards
	}
	s.Stage++
	s.ToCall = 0
	s.Checked = false
	if s.Stage != Showdown {
		s.Player = 1 - s.Dealer
	}
}

func (s *State) dealBoard(n int) {
	for _, c := range s.Deck.Deal(n) {
		s.Board[s.BoardLen] = c
		s.BoardLen++
	}
}

// Fingerprint returns the information-set key for the player currently to
// act, per spec §4.3: hand_key | board_key | history | pot | to_call.
func (s *State) Fingerprint() string {
	hole := s.Hole[s.Player]
	handKey := cards.SortedKey(hole[:])
	boardKey := cards.SortedKey(s.BoardCards())
	return handKey + "|" + boardKey + "|" + s.History + "|" + itoa(s.Pot) + "|" + itoa(s.ToCall)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Utility returns the terminal payoff for player 0, per spec §4.2.2. It
// must only be called when s.Terminal is true (fold) — showdown utility
// at Stage == Showdown requires the hand evaluator and is computed by the
// caller (pkg/solver), which has access to pkg/cards.
func (s *State) Utility() float64 {
	if !s.Terminal {
		panic("game: Utility called on a non-terminal, non-fold state")
	}
	if s.Winner == 0 {
		return float64(s.Pot)
	}
	return -float64(s.Pot)
}

// Validate checks the §3 invariants a State must satisfy. It is used at
// training initialization, where a violation indicates an implementation
// bug, and by the move query path, where it reports a caller-supplied
// state that the caller must correct.
func Validate(s *State) error {
	if s.Pot < 2 {
		return invalidState("pot %d is below the minimum of two posted blinds", s.Pot)
	}
	if s.ToCall < 0 {
		return invalidState("to_call %d must be non-negative", s.ToCall)
	}
	wantBoard := map[Stage]int{Preflop: 0, Flop: 3, Turn: 4, River: 5, Showdown: 5}
	if want, ok := wantBoard[s.Stage]; ok && s.BoardLen != want {
		return invalidState("stage %d expects %d board cards, got %d", s.Stage, want, s.BoardLen)
	}
	if s.Terminal && s.Winner != 0 && s.Winner != 1 {
		return invalidState("terminal state has invalid winner %d", s.Winner)
	}

	seen := make(map[cards.Card]bool)
	add := func(c cards.Card) error {
		if seen[c] {
			return invalidState("duplicate card %v", c)
		}
		seen[c] = true
		return nil
	}
	for _, hole := range s.Hole {
		for _, c := range hole {
			if err := add(c); err != nil {
				return err
			}
		}
	}
	for _, c := range s.BoardCards() {
		if err := add(c); err != nil {
			return err
		}
	}
	for _, c := range s.Deck.UndealtCards() {
		if err := add(c); err != nil {
			return err
		}
	}
	return nil
}
