package liverpool

// Deck is a joker-inclusive shoe of playing cards. Cards are drawn from
// the front (index i) up to a draw limit (index l) over one backing
// slice, following the teacher's index-pair-over-a-slice design rather
// than repeated slice reallocation on every draw.
type Deck struct {
	i int
	l int
	v []Card
}

// Unshuffled generates one unshuffled 52-card deck plus 2 jokers.
func Unshuffled() []Card {
	v := make([]Card, 0, 54)
	for _, s := range Suits() {
		for r := RankMin; r <= RankMax; r++ {
			v = append(v, New(r, s))
		}
	}
	return append(v, Joker, Joker)
}

// NewDeck creates a Deck from cards, or one unshuffled deck if none are
// given.
func NewDeck(cards ...Card) *Deck {
	if cards == nil {
		cards = Unshuffled()
	}
	v := make([]Card, len(cards))
	copy(v, cards)
	return &Deck{v: v, l: len(v)}
}

// NewShoeDeck creates a Deck composed of n unshuffled decks concatenated,
// the typical starting point for a multi-deck Contract Rummy game (two
// decks is the usual configuration).
func NewShoeDeck(n int) *Deck {
	one := Unshuffled()
	v := make([]Card, 0, len(one)*n)
	for i := 0; i < n; i++ {
		v = append(v, one...)
	}
	return &Deck{v: v, l: len(v)}
}

// Shuffle shuffles the deck's undrawn cards using f (the same interface
// as math/rand.Shuffle), so this package never takes a dependency on a
// particular RNG: shuffling/RNG policy is the caller's concern.
func (d *Deck) Shuffle(f func(int, func(i, j int))) {
	n := d.l - d.i
	f(n, func(a, b int) {
		d.v[d.i+a], d.v[d.i+b] = d.v[d.i+b], d.v[d.i+a]
	})
}

// Draw draws the next card from the deck. Returns ErrEmptyDeck if the
// deck is exhausted.
func (d *Deck) Draw() (Card, error) {
	if d.Empty() {
		return InvalidCard, ErrEmptyDeck
	}
	c := d.v[d.i]
	d.i++
	return c, nil
}

// DrawN draws the next n cards from the deck. Returns ErrEmptyDeck
// (drawing none) if fewer than n cards remain.
func (d *Deck) DrawN(n int) ([]Card, error) {
	if d.Remaining() < n {
		return nil, ErrEmptyDeck
	}
	cards := make([]Card, n)
	for i := 0; i < n; i++ {
		cards[i], _ = d.Draw()
	}
	return cards, nil
}

// Put returns a card to the top of the deck: the next Draw returns
// exactly this card. Mirrors the source's Deck.put, which inserts at
// the same end the deck is drawn from (a discard returned to the deck
// is the next thing dealt).
func (d *Deck) Put(c Card) {
	if d.i > 0 {
		d.i--
		d.v[d.i] = c
		return
	}
	d.v = append(d.v, c)
	copy(d.v[1:], d.v[:len(d.v)-1])
	d.v[0] = c
	d.l++
}

// Take removes one specific card from anywhere in the deck's undrawn
// portion. Returns ErrInvalidDeckTake if the card is not present.
func (d *Deck) Take(c Card) error {
	for idx := d.i; idx < d.l; idx++ {
		if d.v[idx] == c {
			copy(d.v[idx:d.l-1], d.v[idx+1:d.l])
			d.l--
			return nil
		}
	}
	return ErrInvalidDeckTake
}

// Empty reports whether the deck has no cards left to draw.
func (d *Deck) Empty() bool {
	return d.i >= d.l
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	if n := d.l - d.i; n > 0 {
		return n
	}
	return 0
}

// WithTransaction runs f against the deck, restoring the deck's exact
// prior state if f returns an error. Mirrors the source's
// DeckTransaction and its `with deck:` context manager use in
// Hand.from_deck.
func (d *Deck) WithTransaction(f func() error) error {
	saved := append([]Card(nil), d.v...)
	savedI, savedL := d.i, d.l
	if err := f(); err != nil {
		d.v, d.i, d.l = saved, savedI, savedL
		return err
	}
	return nil
}

// DealHand draws count cards from d as a new Hand, inside a transaction
// so that an undersized deck leaves d untouched. Mirrors the source's
// Hand.from_deck.
func DealHand(d *Deck, count int) (*Hand, error) {
	var hand *Hand
	err := d.WithTransaction(func() error {
		cards, err := d.DrawN(count)
		if err != nil {
			return err
		}
		hand = NewHand(cards...)
		return nil
	})
	return hand, err
}
