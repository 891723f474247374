package liverpool

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnshuffledHasFullDeckPlusTwoJokers(t *testing.T) {
	cards := Unshuffled()
	assert.Len(t, cards, 54)

	jokers := 0
	naturals := make(map[Card]bool)
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
			continue
		}
		naturals[c] = true
	}
	assert.Equal(t, 2, jokers)
	assert.Len(t, naturals, 52)
}

func TestNewShoeDeckConcatenatesNDecks(t *testing.T) {
	d := NewShoeDeck(2)
	assert.Equal(t, 108, d.Remaining())
}

func TestDeckDrawExhaustion(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club))
	c1, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, New(Two, Club), c1)

	c2, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, New(Three, Club), c2)

	assert.True(t, d.Empty())
	_, err = d.Draw()
	assert.ErrorIs(t, err, ErrEmptyDeck)
}

func TestDeckDrawN(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club), New(Four, Club))
	cards, err := d.DrawN(2)
	require.NoError(t, err)
	assert.Equal(t, []Card{New(Two, Club), New(Three, Club)}, cards)
	assert.Equal(t, 1, d.Remaining())

	_, err = d.DrawN(2)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 1, d.Remaining(), "a failed DrawN must not consume cards")
}

func TestDeckPutAndTake(t *testing.T) {
	d := NewDeck(New(Two, Club))
	d.Put(New(King, Heart))
	assert.Equal(t, 2, d.Remaining())

	require.NoError(t, d.Take(New(King, Heart)))
	assert.Equal(t, 1, d.Remaining())

	err := d.Take(New(King, Heart))
	assert.ErrorIs(t, err, ErrInvalidDeckTake)
}

func TestDeckPutPlacesCardOnTop(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club))
	d.Put(New(King, Heart))
	assert.Equal(t, 3, d.Remaining())

	c, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, New(King, Heart), c, "a put card is the next one drawn (LIFO top-of-deck)")
}

func TestDeckPutAfterTakeShiftsRemainingDown(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club), New(Four, Club))
	require.NoError(t, d.Take(New(Three, Club)))
	assert.Equal(t, 2, d.Remaining())

	d.Put(New(King, Heart))
	assert.Equal(t, 3, d.Remaining())

	cards, err := d.DrawN(3)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Card{New(Two, Club), New(Four, Club), New(King, Heart)}, cards)
}

func TestDeckShuffleIsPermutation(t *testing.T) {
	d := NewDeck(Unshuffled()...)
	before := make([]Card, d.Remaining())
	copy(before, d.v[d.i:d.l])

	r := rand.New(rand.NewSource(1))
	d.Shuffle(r.Shuffle)

	after := make([]Card, d.Remaining())
	copy(after, d.v[d.i:d.l])

	assert.ElementsMatch(t, before, after)
}

func TestDeckShuffleOnlyTouchesUndrawnCards(t *testing.T) {
	d := NewDeck(Unshuffled()...)
	drawn, err := d.Draw()
	require.NoError(t, err)

	r := rand.New(rand.NewSource(2))
	d.Shuffle(r.Shuffle)

	remaining, err := d.DrawN(d.Remaining())
	require.NoError(t, err)
	for _, c := range remaining {
		assert.NotEqual(t, drawn, c)
	}
}

func TestDeckWithTransactionRollsBackOnError(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club))
	err := d.WithTransaction(func() error {
		if _, err := d.Draw(); err != nil {
			return err
		}
		return ErrEmptyDeck
	})
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 2, d.Remaining(), "a failed transaction must restore the deck")
}

func TestDeckWithTransactionCommitsOnSuccess(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club))
	err := d.WithTransaction(func() error {
		_, err := d.Draw()
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, d.Remaining())
}

func TestDealHandSucceeds(t *testing.T) {
	d := NewDeck(New(Two, Club), New(Three, Club), New(Four, Club))
	hand, err := DealHand(d, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, hand.Len())
	assert.Equal(t, 1, d.Remaining())
}

func TestDealHandInsufficientCardsLeavesDeckUntouched(t *testing.T) {
	d := NewDeck(New(Two, Club))
	_, err := DealHand(d, 2)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 1, d.Remaining())
}
