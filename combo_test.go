package liverpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunValidatesBounds(t *testing.T) {
	_, err := NewRun(Heart, Two, RunMin-1, nil)
	assert.ErrorIs(t, err, ErrInvalidCombo)

	_, err = NewRun(Heart, Jack, 5, nil)
	assert.ErrorIs(t, err, ErrInvalidCombo, "Jack+5 overruns Ace")

	r, err := NewRun(Heart, Two, RunMin, nil)
	require.NoError(t, err)
	assert.Equal(t, Rank(Two), r.Start)
	assert.Equal(t, Five, r.End())
}

func TestNewRunRejectsTooManyJokers(t *testing.T) {
	_, err := NewRun(Heart, Two, RunMin, []int{0, 1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidJokerCount)
}

func TestNewRunCardsMaterializeJokers(t *testing.T) {
	r, err := NewRun(Heart, Two, RunMin, []int{1})
	require.NoError(t, err)
	cards := r.Cards()
	assert.Equal(t, New(Two, Heart), cards[0])
	assert.Equal(t, Materialize(Three, Heart), cards[1])
	assert.True(t, r.HasJokerAt(1))
	assert.False(t, r.HasJokerAt(0))
}

func TestRunIterLeftAndIterRight(t *testing.T) {
	r, err := NewRun(Club, Five, RunMin, nil)
	require.NoError(t, err)
	assert.Equal(t, []Card{New(Four, Club), New(Three, Club), New(Two, Club)}, r.IterLeft())
	assert.Equal(t, []Card{New(Nine, Club), New(Ten, Club), New(Jack, Club), New(Queen, Club), New(King, Club), New(Ace, Club)}, r.IterRight())
}

func TestRunExtendFromBothSides(t *testing.T) {
	r, err := NewRun(Heart, Five, RunMin, nil)
	require.NoError(t, err)
	wider, err := NewRun(Heart, Three, 7, nil)
	require.NoError(t, err)

	ext, err := r.ExtendFrom(wider)
	require.NoError(t, err)
	assert.Equal(t, []Card{New(Three, Heart), New(Four, Heart)}, ext.Left)
	assert.Equal(t, []Card{New(Nine, Heart)}, ext.Right)
	assert.False(t, ext.Empty())
}

func TestRunExtendFromRejectsNonSuperset(t *testing.T) {
	r, err := NewRun(Heart, Five, RunMin, nil)
	require.NoError(t, err)
	unrelated, err := NewRun(Heart, Nine, RunMin, nil)
	require.NoError(t, err)

	_, err = r.ExtendFrom(unrelated)
	assert.ErrorIs(t, err, ErrInvalidExtend)
}

func TestRunExtendFromRejectsNoOp(t *testing.T) {
	r, err := NewRun(Heart, Five, RunMin, nil)
	require.NoError(t, err)
	_, err = r.ExtendFrom(r)
	assert.ErrorIs(t, err, ErrInvalidExtend)
}

func TestRunExtendFromRejectsDifferentSuit(t *testing.T) {
	r, err := NewRun(Heart, Five, RunMin, nil)
	require.NoError(t, err)
	other, err := NewRun(Club, Three, 7, nil)
	require.NoError(t, err)
	_, err = r.ExtendFrom(other)
	assert.ErrorIs(t, err, ErrInvalidExtend)
}

func TestNewSetValidatesBounds(t *testing.T) {
	_, err := NewSet(Five, 0, []Suit{Club, Heart})
	assert.ErrorIs(t, err, ErrInvalidCombo, "two suits with no jokers is below SetMin")

	s, err := NewSet(Five, 0, []Suit{Club, Heart, Diamond})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestNewSetRejectsTooManyJokers(t *testing.T) {
	_, err := NewSet(Five, MaxSetJokers+1, []Suit{Club})
	assert.ErrorIs(t, err, ErrInvalidJokerCount)
}

func TestNewSetSortsSuits(t *testing.T) {
	s, err := NewSet(Five, 0, []Suit{Diamond, Club, Heart})
	require.NoError(t, err)
	assert.Equal(t, []Suit{Club, Heart, Diamond}, s.Suits)
}

func TestSetCardsJokersFirst(t *testing.T) {
	s, err := NewSet(Seven, 1, []Suit{Club, Heart})
	require.NoError(t, err)
	cards := s.Cards()
	assert.True(t, cards[0].IsJoker())
	assert.Equal(t, New(Seven, Club), cards[1])
	assert.Equal(t, New(Seven, Heart), cards[2])
}

func TestSetEqualAndLess(t *testing.T) {
	a, err := NewSet(Five, 0, []Suit{Club, Heart, Diamond})
	require.NoError(t, err)
	b, err := NewSet(Five, 0, []Suit{Diamond, Heart, Club})
	require.NoError(t, err)
	assert.True(t, a.Equal(b))

	bigger, err := NewSet(Five, 1, []Suit{Club, Heart, Diamond})
	require.NoError(t, err)
	assert.True(t, a.Less(bigger))
}

func TestNewObjectiveRejectsNegative(t *testing.T) {
	_, err := NewObjective(-1, 0)
	assert.ErrorIs(t, err, ErrInvalidObjective)
}

func TestMeldKeyEqualForEqualMelds(t *testing.T) {
	s, err := NewSet(Five, 0, []Suit{Club, Heart, Diamond})
	require.NoError(t, err)
	r, err := NewRun(Heart, Two, RunMin, nil)
	require.NoError(t, err)

	m1 := Meld{Sets: []Set{s}, Runs: []Run{r}}
	m2 := Meld{Sets: []Set{s}, Runs: []Run{r}}
	assert.Equal(t, m1.Key(), m2.Key())
	assert.Equal(t, s.Len()+int(r.Len), m1.Len())
}

func TestMeldUpdateDefaultsToNoOp(t *testing.T) {
	mu := NewMeldUpdate()
	assert.Empty(t, mu.Adds)
	assert.Empty(t, mu.Extends)
}

func TestExtendStringFormatsSides(t *testing.T) {
	r, err := NewRun(Heart, Five, RunMin, nil)
	require.NoError(t, err)
	ext := Extend{Run: r, Left: []Card{New(Four, Heart)}}
	assert.Contains(t, ext.String(), "++")
}
