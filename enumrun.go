package liverpool

import "sort"

// runCandidate is an interim (start, per-position-is-joker) pair produced
// while enumerating runs, before being validated into a Run.
type runCandidate struct {
	start  Rank
	jokers []bool
}

// interleave checks whether selectedRanks (natural card ranks already
// chosen) and jokerRanks (ranks speculatively assigned to jokers)
// together cover one contiguous span of ranks with no overlap and no
// gaps. On success it returns the span's start rank and a per-position
// flag marking which positions came from a joker.
func interleave(selectedRanks, jokerRanks []Rank) (start Rank, jokers []bool, ok bool) {
	if len(selectedRanks) == 0 && len(jokerRanks) == 0 {
		return 0, nil, false
	}
	lo, hi := RankMax, RankMin
	for _, r := range selectedRanks {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	for _, r := range jokerRanks {
		if r < lo {
			lo = r
		}
		if r > hi {
			hi = r
		}
	}
	inCards := make(map[Rank]bool, len(selectedRanks))
	for _, r := range selectedRanks {
		inCards[r] = true
	}
	inJokers := make(map[Rank]bool, len(jokerRanks))
	for _, r := range jokerRanks {
		inJokers[r] = true
	}
	result := make([]bool, 0, int(hi-lo)+1)
	for r := lo; r <= hi; r++ {
		if inCards[r] && inJokers[r] {
			return 0, nil, false
		}
		if !inCards[r] && !inJokers[r] {
			return 0, nil, false
		}
		result = append(result, inJokers[r])
	}
	return lo, result, true
}

// allRanks lists every valid rank, ascending.
func allRanks() []Rank {
	ranks := make([]Rank, 0, int(RankMax-RankMin)+1)
	for r := RankMin; r <= RankMax; r++ {
		ranks = append(ranks, r)
	}
	return ranks
}

// ranksFromRundex enumerates every (start, joker-positions) run candidate
// obtainable from a single suit's Rundex, using up to MaxRunJokers
// jokers. Brute-force: for every joker count, every selection of natural
// ranks present, and every speculative assignment of joker ranks, checks
// via interleave whether they form one contiguous run.
func ranksFromRundex(rundex Rundex, jokers int) []runCandidate {
	totalJokers := capJokers(jokers, MaxRunJokers)
	var ranks []Rank
	for r := RankMin; r <= RankMax; r++ {
		if rundex[r] > 0 {
			ranks = append(ranks, r)
		}
	}
	all := allRanks()

	var out []runCandidate
	for numJokers := 0; numJokers <= totalJokers; numJokers++ {
		minSelection := RunMin - numJokers
		if minSelection < 0 {
			minSelection = 0
		}
		for selSize := minSelection; selSize <= len(ranks); selSize++ {
			for _, selected := range UniqueCombinations(ranks, selSize) {
				for _, jokerRanks := range UniqueCombinations(all, numJokers) {
					start, jk, ok := interleave(selected, jokerRanks)
					if !ok || len(jk) < RunMin {
						continue
					}
					out = append(out, runCandidate{start: start, jokers: append([]bool(nil), jk...)})
				}
			}
		}
	}
	return sortUniqRunCandidates(out)
}

// sortUniqRunCandidates sorts run candidates into a canonical order and
// removes duplicates (the same (start, jokers) pair can be reached via
// different joker-rank assignments).
func sortUniqRunCandidates(in []runCandidate) []runCandidate {
	sort.Slice(in, func(i, j int) bool {
		if in[i].start != in[j].start {
			return in[i].start < in[j].start
		}
		if len(in[i].jokers) != len(in[j].jokers) {
			return len(in[i].jokers) < len(in[j].jokers)
		}
		for k := range in[i].jokers {
			if in[i].jokers[k] != in[j].jokers[k] {
				return in[j].jokers[k]
			}
		}
		return false
	})
	var out []runCandidate
	for _, c := range in {
		if len(out) > 0 && out[len(out)-1].start == c.start && equalSlice(out[len(out)-1].jokers, c.jokers) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IterRuns enumerates every Run obtainable from hand, across all four
// suits, directly (no lookup-table cache; see IterRunsLUT for the cached
// variant).
func IterRuns(hand *IndexedHand) []Run {
	var runs []Run
	for _, suit := range Suits() {
		for _, cand := range ranksFromRundex(hand.rundex[suit], hand.Jokers()) {
			var jokerPositions []int
			for i, isJoker := range cand.jokers {
				if isJoker {
					jokerPositions = append(jokerPositions, i)
				}
			}
			run, err := NewRun(suit, cand.start, len(cand.jokers), jokerPositions)
			if err == nil {
				runs = append(runs, run)
			}
		}
	}
	return runs
}
