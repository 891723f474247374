package liverpool

// SetIterator produces the Sets available from a hand; swappable between
// the direct (IterSets) and LUT-backed (IterSetsLUT) enumerators.
type SetIterator func(*IndexedHand) []Set

// RunIterator produces the Runs available from a hand; swappable between
// the direct (IterRuns) and LUT-backed (IterRunsLUT) enumerators.
type RunIterator func(*IndexedHand) []Run

// setCardLists expands each Set into its card list, in the order
// takeCombosCommitted expects.
func setCardLists(sets []Set) [][]Card {
	lists := make([][]Card, len(sets))
	for i, s := range sets {
		lists[i] = s.Cards()
	}
	return lists
}

// runCardLists expands each Run into its card list.
func runCardLists(runs []Run) [][]Card {
	lists := make([][]Card, len(runs))
	for i, r := range runs {
		lists[i] = r.Cards()
	}
	return lists
}

// takeCombosCommitted speculatively takes every combo in order. If every
// take succeeds, either commits (leaving the cards taken) or rolls back
// (returning them), per commit, and reports success. If any take fails,
// rolls back everything taken so far in this call and reports failure —
// the hand's take-stack has not been committed since entering this
// function, so a single Rollback unwinds the whole attempt.
func takeCombosCommitted(hand *IndexedHand, combos [][]Card, commit bool) bool {
	for _, combo := range combos {
		if err := hand.TakeCombo(combo); err != nil {
			hand.Rollback()
			return false
		}
	}
	if commit {
		hand.Commit()
	} else {
		hand.Rollback()
	}
	return true
}

// dedupMelds removes Melds with an equal canonical card sequence,
// preserving first-seen (emission) order.
func dedupMelds(in []Meld) []Meld {
	seen := make(map[string]bool, len(in))
	var out []Meld
	for _, m := range in {
		k := m.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, m)
	}
	return out
}

// IterMelds enumerates every distinct Meld satisfying objective from
// hand, using the direct (non-LUT) Set/Run enumerators.
func IterMelds(hand *IndexedHand, objective Objective) []Meld {
	return IterMeldsWith(hand, objective, IterSets, IterRuns)
}

// IterMeldsWith enumerates every distinct Meld satisfying objective from
// hand, with pluggable Set/Run enumerators (direct or LUT-backed).
//
// For each required set count and run count, candidate sets are drawn
// with replacement (the same Set can recur if the hand holds enough
// cards to form it twice) and speculatively taken from the hand; on
// success, candidate runs are drawn the same way against what remains.
// A take failure at any combo prunes that branch without materializing
// it. The two pure single-kind cases (all sets, all runs) skip the
// nested commit/undo scaffolding the mixed case needs to keep sets taken
// while runs are explored underneath them.
func IterMeldsWith(hand *IndexedHand, objective Objective, setIter SetIterator, runIter RunIterator) []Meld {
	var melds []Meld
	switch {
	case objective.NumRuns == 0:
		for _, sets := range CombinationsWithReplacement(setIter(hand), objective.NumSets) {
			if takeCombosCommitted(hand, setCardLists(sets), false) {
				melds = append(melds, Meld{Sets: sets})
			}
		}
	case objective.NumSets == 0:
		for _, runs := range CombinationsWithReplacement(runIter(hand), objective.NumRuns) {
			if takeCombosCommitted(hand, runCardLists(runs), false) {
				melds = append(melds, Meld{Runs: runs})
			}
		}
	default:
		for _, sets := range CombinationsWithReplacement(setIter(hand), objective.NumSets) {
			if takeCombosCommitted(hand, setCardLists(sets), true) {
				for _, runs := range CombinationsWithReplacement(runIter(hand), objective.NumRuns) {
					if takeCombosCommitted(hand, runCardLists(runs), false) {
						melds = append(melds, Meld{Sets: sets, Runs: runs})
					}
				}
				hand.Undo()
			}
		}
	}
	return dedupMelds(melds)
}
