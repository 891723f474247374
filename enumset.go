package liverpool

import "sort"

// jokerSlot marks a joker wildcard position inside a set-candidate combo
// built from suits-or-jokers; a real suit is always >= 0 so -1 is safe as
// a sentinel.
const jokerSlot = -1

// setsFromColors enumerates every distinct suit-or-joker combination of
// size in [minSize, len(suits)+jokers] obtainable from suits (one rank's
// present suits) plus up to jokers wildcard slots. Mirrors
// generation.py's sets_from_colors: jokers are prepended as sentinel
// slots so a single "unique combinations over a sorted multiset" routine
// handles both natural suits and joker substitution.
func setsFromColors(suits []Suit, jokers, minSize int) [][]int {
	jokeredColors := make([]int, 0, jokers+len(suits))
	for i := 0; i < jokers; i++ {
		jokeredColors = append(jokeredColors, jokerSlot)
	}
	for _, s := range suits {
		jokeredColors = append(jokeredColors, int(s))
	}

	var all [][]int
	for setSize := minSize; setSize <= len(jokeredColors); setSize++ {
		all = append(all, UniqueCombinations(jokeredColors, setSize)...)
	}
	return sortUniqCombos(all)
}

// sortUniqCombos sorts suit-or-joker combinations into a canonical order
// (by length, then lexically with joker slots sorting first) and removes
// duplicates.
func sortUniqCombos(in [][]int) [][]int {
	sort.Slice(in, func(i, j int) bool {
		if len(in[i]) != len(in[j]) {
			return len(in[i]) < len(in[j])
		}
		for k := range in[i] {
			if in[i][k] != in[j][k] {
				return in[i][k] < in[j][k]
			}
		}
		return false
	})
	var out [][]int
	for _, c := range in {
		if len(out) > 0 && equalSlice(out[len(out)-1], c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IterSets enumerates every Set obtainable from hand, across all ranks
// 2..Ace, directly (no lookup-table cache; see IterSetsLUT for the cached
// variant).
func IterSets(hand *IndexedHand) []Set {
	jokers := capJokers(hand.Jokers(), MaxSetJokers)
	var sets []Set
	for rank := RankMin; rank <= RankMax; rank++ {
		suits := hand.setdex[rank].Suits()
		for _, combo := range setsFromColors(suits, jokers, SetMin) {
			jokerCount := 0
			var natural []Suit
			for _, v := range combo {
				if v == jokerSlot {
					jokerCount++
				} else {
					natural = append(natural, Suit(v))
				}
			}
			set, err := NewSet(rank, jokerCount, natural)
			if err == nil {
				sets = append(sets, set)
			}
		}
	}
	return sets
}
