package liverpool

import (
	"sort"
	"strings"
)

// RunMin is the minimum number of cards in a Run.
const RunMin = 4

// SetMin is the minimum number of cards in a Set.
const SetMin = 3

// Run is an immutable ordered sequence of RunMin or more cards sharing one
// suit whose ranks are strictly ascending by 1. Jokers inside a run are
// materialized to the rank/suit they stand for, tracked as a bitmask over
// run positions rather than as a slice of Cards, which keeps Run a plain
// comparable value usable as a map key.
type Run struct {
	Suit   Suit
	Start  Rank
	Len    uint8
	Jokers uint16 // bit i set means position i (rank Start+i) is a materialized joker
}

// NewRun constructs a Run, validating its invariants.
func NewRun(suit Suit, start Rank, length int, jokerPositions []int) (Run, error) {
	if !suit.Valid() || !start.Valid() || length < RunMin || int(start)+length-1 > int(RankMax) {
		return Run{}, ErrInvalidCombo
	}
	if len(jokerPositions) > MaxRunJokers {
		return Run{}, ErrInvalidJokerCount
	}
	var mask uint16
	for _, pos := range jokerPositions {
		if pos < 0 || pos >= length {
			return Run{}, ErrInvalidCombo
		}
		mask |= 1 << uint(pos)
	}
	return Run{Suit: suit, Start: start, Len: uint8(length), Jokers: mask}, nil
}

// HasJokerAt reports whether position i (0-indexed from Start) is a
// materialized joker.
func (r Run) HasJokerAt(i int) bool {
	return r.Jokers&(1<<uint(i)) != 0
}

// Cards returns the run's cards in ascending rank order.
func (r Run) Cards() []Card {
	cards := make([]Card, r.Len)
	for i := 0; i < int(r.Len); i++ {
		rank := r.Start + Rank(i)
		if r.HasJokerAt(i) {
			cards[i] = Materialize(rank, r.Suit)
		} else {
			cards[i] = New(rank, r.Suit)
		}
	}
	return cards
}

// End returns the run's final rank.
func (r Run) End() Rank {
	return r.Start + Rank(r.Len) - 1
}

// IterLeft returns the natural cards immediately to the left of the run,
// descending from Start-1 to RankMin.
func (r Run) IterLeft() []Card {
	var cards []Card
	for rank := int(r.Start) - 1; rank >= int(RankMin); rank-- {
		cards = append(cards, New(Rank(rank), r.Suit))
	}
	return cards
}

// IterRight returns the natural cards immediately to the right of the run,
// ascending from End+1 to RankMax.
func (r Run) IterRight() []Card {
	if r.End() >= RankMax {
		return nil
	}
	return New(r.End()+1, r.Suit).UpFrom()
}

// ExtendFrom computes the Extend that turns other into a superset of r:
// cards of other to the left of r's start become the Extend's left prefix,
// cards to the right become its right suffix. Returns ErrInvalidExtend if
// other does not share r's suit, does not contain r's cards as a
// contiguous subrun, or would be an empty (no-op) extension.
func (r Run) ExtendFrom(other Run) (Extend, error) {
	if r.Suit != other.Suit {
		return Extend{}, ErrInvalidExtend
	}
	mine, theirs := r.Cards(), other.Cards()
	var left []Card
	for len(theirs) > 0 && theirs[0].Less(mine[0]) {
		left = append(left, theirs[0])
		theirs = theirs[1:]
	}
	if len(theirs) < len(mine) {
		return Extend{}, ErrInvalidExtend
	}
	overlap, right := theirs[:len(mine)], theirs[len(mine):]
	for i := range mine {
		if overlap[i] != mine[i] {
			return Extend{}, ErrInvalidExtend
		}
	}
	if len(left) == 0 && len(right) == 0 {
		return Extend{}, ErrInvalidExtend
	}
	return Extend{Run: r, Left: left, Right: right}, nil
}

// String satisfies the fmt.Stringer interface.
func (r Run) String() string {
	return CardFormatter(r.Cards()).String()
}

// Set is an immutable multiset of SetMin or more cards of one rank.
// Jokers inside a set are materialized to JokerCanonicalSuit so that set
// equality does not depend on which suit a joker happened to be pinned to.
type Set struct {
	Rank   Rank
	Jokers uint8
	Suits  []Suit // sorted natural suits, ascending
}

// NewSet constructs a Set, validating its invariants. suits lists the
// natural (non-joker) suits present; jokers is the count of wild cards
// filling out the set.
func NewSet(rank Rank, jokers int, suits []Suit) (Set, error) {
	if !rank.Valid() || jokers < 0 || jokers+len(suits) < SetMin {
		return Set{}, ErrInvalidCombo
	}
	if jokers > MaxSetJokers {
		return Set{}, ErrInvalidJokerCount
	}
	for _, s := range suits {
		if !s.Valid() {
			return Set{}, ErrInvalidCombo
		}
	}
	sorted := append([]Suit(nil), suits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return Set{Rank: rank, Jokers: uint8(jokers), Suits: sorted}, nil
}

// Len returns the set's size.
func (s Set) Len() int {
	return int(s.Jokers) + len(s.Suits)
}

// Cards returns the set's cards: materialized jokers first, then naturals
// by ascending suit.
func (s Set) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for i := 0; i < int(s.Jokers); i++ {
		cards = append(cards, Materialize(s.Rank, JokerCanonicalSuit))
	}
	for _, suit := range s.Suits {
		cards = append(cards, New(s.Rank, suit))
	}
	return cards
}

// Equal reports whether s and other are the same set (rank, joker count,
// and natural suits all equal).
func (s Set) Equal(other Set) bool {
	if s.Rank != other.Rank || s.Jokers != other.Jokers || len(s.Suits) != len(other.Suits) {
		return false
	}
	for i := range s.Suits {
		if s.Suits[i] != other.Suits[i] {
			return false
		}
	}
	return true
}

// Less provides a total order over Sets, for deterministic output: by
// length, then rank, then joker count, then natural suits lexically.
func (s Set) Less(other Set) bool {
	switch {
	case s.Len() != other.Len():
		return s.Len() < other.Len()
	case s.Rank != other.Rank:
		return s.Rank < other.Rank
	case s.Jokers != other.Jokers:
		return s.Jokers < other.Jokers
	}
	for i := 0; i < len(s.Suits) && i < len(other.Suits); i++ {
		if s.Suits[i] != other.Suits[i] {
			return s.Suits[i] < other.Suits[i]
		}
	}
	return len(s.Suits) < len(other.Suits)
}

// String satisfies the fmt.Stringer interface.
func (s Set) String() string {
	return CardFormatter(s.Cards()).String()
}

// Add is a (possibly empty) list of cards to append to an existing Set
// while preserving its validity (same rank).
type Add []Card

// String satisfies the fmt.Stringer interface.
func (a Add) String() string {
	return CardFormatter(a).String()
}

// Extend is a (possibly empty on either side) prefix and suffix of
// same-suit, contiguous cards to attach to an existing Run.
type Extend struct {
	Run   Run
	Left  []Card // descending is not required; stored ascending (closest-to-run last)
	Right []Card
}

// Empty reports whether the extend is a no-op.
func (e Extend) Empty() bool {
	return len(e.Left) == 0 && len(e.Right) == 0
}

// Cards returns all cards contributed by the extension (left then right).
func (e Extend) Cards() []Card {
	cards := make([]Card, 0, len(e.Left)+len(e.Right))
	cards = append(cards, e.Left...)
	cards = append(cards, e.Right...)
	return cards
}

// String satisfies the fmt.Stringer interface.
func (e Extend) String() string {
	var b strings.Builder
	if len(e.Left) > 0 {
		b.WriteString(CardFormatter(e.Left).String())
		b.WriteString("++")
	}
	b.WriteString("(")
	b.WriteString(e.Run.String())
	b.WriteString(")")
	if len(e.Right) > 0 {
		b.WriteString("++")
		b.WriteString(CardFormatter(e.Right).String())
	}
	return b.String()
}

// Objective is the per-round contract: the number of sets and runs
// required to lay a meld down.
type Objective struct {
	NumSets int
	NumRuns int
}

// NewObjective constructs an Objective, validating non-negative counts.
func NewObjective(numSets, numRuns int) (Objective, error) {
	if numSets < 0 || numRuns < 0 {
		return Objective{}, ErrInvalidObjective
	}
	return Objective{NumSets: numSets, NumRuns: numRuns}, nil
}

// Meld is an immutable collection of sets and runs that can be laid down
// together.
type Meld struct {
	Sets []Set
	Runs []Run
}

// Cards returns the meld's full card sequence: all set cards, in set
// order, then all run cards, in run order. Meld equality and ordering are
// defined over this sequence.
func (m Meld) Cards() []Card {
	var cards []Card
	for _, s := range m.Sets {
		cards = append(cards, s.Cards()...)
	}
	for _, r := range m.Runs {
		cards = append(cards, r.Cards()...)
	}
	return cards
}

// Len returns the total number of cards in the meld.
func (m Meld) Len() int {
	n := 0
	for _, s := range m.Sets {
		n += s.Len()
	}
	for _, r := range m.Runs {
		n += int(r.Len)
	}
	return n
}

// Key returns a canonical byte-string key over the meld's card sequence,
// suitable for deduplication (spec 4.6: "sort-and-unique stage keyed on
// the Meld's canonical card-sequence hash").
func (m Meld) Key() string {
	cards := m.Cards()
	buf := make([]byte, len(cards))
	for i, c := range cards {
		buf[i] = byte(c)
	}
	return string(buf)
}

// String satisfies the fmt.Stringer interface.
func (m Meld) String() string {
	var parts []string
	for _, s := range m.Sets {
		parts = append(parts, s.String())
	}
	for _, r := range m.Runs {
		parts = append(parts, r.String())
	}
	return "Meld(" + strings.Join(parts, "   ") + ")"
}

// MeldUpdate maps set/run indices (within a target Meld) to the Add/Extend
// to apply there. Indices absent from the maps receive a no-op update.
type MeldUpdate struct {
	Adds    map[int]Add
	Extends map[int]Extend
}

// NewMeldUpdate creates an empty MeldUpdate.
func NewMeldUpdate() MeldUpdate {
	return MeldUpdate{Adds: make(map[int]Add), Extends: make(map[int]Extend)}
}
