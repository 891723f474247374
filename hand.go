package liverpool

// cardSpace bounds the range of Card encodings a Hand's count array must
// index: the largest materialized-joker encoding is jokerBit|valueBits(Ace,
// Diamond), comfortably under 128.
const cardSpace = 128

// stackEntry is one frame of a Hand's take-stack: either a taken card, or
// a transaction sentinel (isSentinel true) marking the start of a
// transaction.
type stackEntry struct {
	card       Card
	isSentinel bool
}

// Hand is a multiset of cards, implemented as a fixed-size count array
// indexed by card encoding. Hand maintains a take-stack: an ordered
// history of taken cards delimited by transaction sentinels, so that
// speculative takes of composite objects (Runs/Sets) can be committed or
// rolled back as a unit. Puts are never transacted; only takes are.
type Hand struct {
	counts [cardSpace]uint8
	taken  []stackEntry
}

// NewHand constructs a Hand from cards, then commits (cards put during
// construction are not part of any pending transaction).
func NewHand(cards ...Card) *Hand {
	h := &Hand{}
	for _, c := range cards {
		h.Put(c)
	}
	h.Commit()
	return h
}

// Jokers returns the number of unmaterialized jokers in the hand.
func (h *Hand) Jokers() int {
	return int(h.counts[Joker])
}

// Len returns the total number of cards in the hand.
func (h *Hand) Len() int {
	n := 0
	for _, c := range h.counts {
		n += int(c)
	}
	return n
}

// Empty reports whether the hand holds no cards.
func (h *Hand) Empty() bool {
	return h.Len() == 0
}

// Count returns the number of copies of c in the hand.
func (h *Hand) Count(c Card) int {
	if int(c) >= cardSpace {
		return 0
	}
	return int(h.counts[c])
}

// Cards returns every card in the hand, each repeated by its count, in
// encoding order.
func (h *Hand) Cards() []Card {
	var cards []Card
	for v, n := range h.counts {
		for i := uint8(0); i < n; i++ {
			cards = append(cards, Card(v))
		}
	}
	return cards
}

// Put adds a card to the hand. Never fails.
func (h *Hand) Put(c Card) {
	h.counts[c]++
}

// Take removes one copy of c from the hand and records it on the
// take-stack. Returns ErrInvalidTake if the hand holds no copies of c.
func (h *Hand) Take(c Card) error {
	if int(c) >= cardSpace || h.counts[c] == 0 {
		return ErrInvalidTake
	}
	h.counts[c]--
	h.taken = append(h.taken, stackEntry{card: c})
	return nil
}

// PutCombo returns every card of a combo to the hand. Cards are
// dematerialized first: a joker that stood in for a rank/suit inside a
// Run or Set returns to the hand as an undifferentiated joker.
func (h *Hand) PutCombo(cards []Card) {
	for _, c := range cards {
		h.Put(c.Dematerialize())
	}
}

// TakeCombo takes every card of a combo from the hand, dematerializing
// jokers first. On the first card that cannot be taken, returns
// ErrInvalidTake, having already taken the cards before the failure; the
// caller is responsible for calling Rollback to undo the partial take
// (this mirrors the take-then-rollback-on-failure discipline the meld and
// update composers rely on for O(1)-amortized speculative composition).
func (h *Hand) TakeCombo(cards []Card) error {
	for _, c := range cards {
		if err := h.Take(c.Dematerialize()); err != nil {
			return err
		}
	}
	return nil
}

// Commit pushes a transaction sentinel onto the take-stack.
func (h *Hand) Commit() {
	h.taken = append(h.taken, stackEntry{isSentinel: true})
}

// Rollback puts back every card taken since the most recent sentinel,
// leaving the sentinel itself in place.
func (h *Hand) Rollback() {
	for len(h.taken) > 0 {
		top := h.taken[len(h.taken)-1]
		if top.isSentinel {
			return
		}
		h.taken = h.taken[:len(h.taken)-1]
		h.Put(top.card)
	}
}

// Undo pops the topmost sentinel and rolls back the transaction it
// closed, unwinding one full commit/take sequence. Returns
// ErrNotInTransaction if there is no enclosing transaction to unwind.
func (h *Hand) Undo() error {
	if len(h.taken) <= 1 {
		return ErrNotInTransaction
	}
	top := h.taken[len(h.taken)-1]
	if !top.isSentinel {
		return ErrNotInTransaction
	}
	h.taken = h.taken[:len(h.taken)-1]
	h.Rollback()
	return nil
}

// Truncate discards the take-stack history, leaving a single fresh
// transaction boundary.
func (h *Hand) Truncate() {
	h.taken = h.taken[:0]
	h.taken = append(h.taken, stackEntry{isSentinel: true})
}

// String satisfies the fmt.Stringer interface.
func (h *Hand) String() string {
	return "Hand" + CardFormatter(h.Cards()).String()
}
