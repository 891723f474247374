package liverpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexedHandRundex(t *testing.T) {
	h := NewIndexedHand(New(Five, Heart), New(Six, Heart), Joker)
	assert.Equal(t, []Card{New(Five, Heart), New(Six, Heart)}, h.IterSuit(Heart))
	assert.Nil(t, h.IterSuit(Club))
}

func TestIndexedHandSetdex(t *testing.T) {
	h := NewIndexedHand(New(Five, Heart), New(Five, Club))
	assert.ElementsMatch(t, []Suit{Club, Heart}, h.setdex[Five].Suits())
}

func TestIndexedHandTakeUpdatesIndex(t *testing.T) {
	h := NewIndexedHand(New(Five, Heart))
	require.NoError(t, h.Take(New(Five, Heart)))
	assert.Empty(t, h.IterSuit(Heart))
	assert.Empty(t, h.setdex[Five].Suits())
}

func TestIndexedHandRollbackRestoresIndex(t *testing.T) {
	h := NewIndexedHand(New(Five, Heart))
	h.Commit()
	require.NoError(t, h.Take(New(Five, Heart)))
	h.Rollback()
	assert.Equal(t, []Card{New(Five, Heart)}, h.IterSuit(Heart))
	assert.ElementsMatch(t, []Suit{Heart}, h.setdex[Five].Suits())
}

func TestIndexedHandUndoRestoresIndex(t *testing.T) {
	h := NewIndexedHand(New(Five, Heart))
	require.NoError(t, h.Take(New(Five, Heart)))
	h.Commit()
	require.NoError(t, h.Undo())
	assert.Equal(t, []Card{New(Five, Heart)}, h.IterSuit(Heart))
}

func TestIndexedHandJokerNotIndexed(t *testing.T) {
	h := NewIndexedHand(Joker, Joker)
	assert.Equal(t, 2, h.Jokers())
	for _, suit := range Suits() {
		assert.Empty(t, h.IterSuit(suit))
	}
}
