package liverpool

import "sort"

// cardScore weights a rank for discard-priority tie-breaking: face cards
// score higher than low cards, Aces highest of all, mirroring Contract
// Rummy's usual point-card scoring (used only to break ties between
// equally-redundant cards, never to rank melds themselves).
func cardScore(rank Rank) int {
	switch rank {
	case Ace:
		return 15
	case Ten, Jack, Queen, King:
		return 10
	default:
		return 5
	}
}

// LeastUseful picks the best discard candidate from a card→count map (as
// produced by UsefulCards/UsefulCardsNaive's existing-cards result):
// fewest copies first, then highest cardScore among ties. Ties among
// equally-redundant, equally-scored cards resolve to the lowest card in
// canonical order, for determinism.
func LeastUseful(counts map[Card]int) Card {
	cards := make([]Card, 0, len(counts))
	for c := range counts {
		cards = append(cards, c)
	}
	sort.Slice(cards, func(i, j int) bool { return cards[i] < cards[j] })

	best := cards[0]
	bestNeg, bestScore := -counts[best], cardScore(best.Rank())
	for _, c := range cards[1:] {
		neg, score := -counts[c], cardScore(c.Rank())
		if neg > bestNeg || (neg == bestNeg && score > bestScore) {
			best, bestNeg, bestScore = c, neg, score
		}
	}
	return best
}

// UsefulCards reports, for a hand working toward objective, which cards
// would help (missing, keyed by card then by how many additional jokers
// beyond the hand's current count it would take to use it) and which
// already-held cards are being used by at least one candidate Meld
// (existing, keyed by card, valued by how many candidate Melds use it).
//
// Works by repeatedly running IterMeldsWith (LUT-backed) against a
// scratch copy of hand with jokers added one at a time, until at least
// one missing card has been recorded (a candidate Meld that uses a joker)
// and maxExtraJokers further jokers have been tried beyond that point — widening the search a little past the first
// hit, since a card that only helps with 3 extra jokers is far less
// useful than one that helps with the hand as dealt.
func UsefulCards(hand *Hand, objective Objective, maxExtraJokers int) (map[Card]map[int]int, map[Card]int) {
	missing := make(map[Card]map[int]int)
	existing := make(map[Card]int)
	for _, c := range hand.Cards() {
		if !c.IsJoker() {
			existing[c] = 0
		}
	}

	scratch := NewIndexedHand(hand.Cards()...)
	additionalJokers := 0
	jokersBeyondUtility := 0

	recordMissing := func(c Card) {
		if missing[c] == nil {
			missing[c] = make(map[int]int)
		}
		missing[c][additionalJokers]++
	}

	for len(missing) == 0 || jokersBeyondUtility < maxExtraJokers {
		if len(missing) > 0 {
			jokersBeyondUtility++
		}
		for _, meld := range IterMeldsWith(scratch, objective, IterSetsLUT, IterRunsLUT) {
			for _, s := range meld.Sets {
				for _, c := range s.Cards() {
					if c.IsJoker() {
						recordMissing(New(s.Rank, c.Suit()))
						for _, suit := range Suits() {
							if suit != c.Suit() {
								recordMissing(New(s.Rank, suit))
							}
						}
					} else {
						existing[c]++
					}
				}
			}
			for _, r := range meld.Runs {
				for i := 0; i < int(r.Len); i++ {
					rank := r.Start + Rank(i)
					if r.HasJokerAt(i) {
						recordMissing(New(rank, r.Suit))
					} else {
						existing[New(rank, r.Suit)]++
					}
				}
			}
		}
		scratch.Put(Joker)
		additionalJokers++
	}
	return missing, existing
}

// UsefulCardsNaive computes the same missing/existing maps as
// UsefulCards but works directly off the hand's Rundex/Setdex index
// (consulting the LUT directly) rather than running the full meld
// composer, trading meld-level precision (it doesn't know which sets and
// runs would actually co-exist in one Meld) for speed.
func UsefulCardsNaive(hand *Hand, objective Objective) (map[Card]map[int]int, map[Card]int) {
	missing := make(map[Card]map[int]int)
	existing := make(map[Card]int)
	for _, c := range hand.Cards() {
		if !c.IsJoker() {
			existing[c] = 0
		}
	}
	scratch := NewIndexedHand(hand.Cards()...)

	recordMissing := func(c Card, distance int) {
		if missing[c] == nil {
			missing[c] = make(map[int]int)
		}
		missing[c][distance]++
	}

	if objective.NumSets > 0 {
		for rank := RankMin; rank <= RankMax; rank++ {
			sd := scratch.setdex[rank]
			count := 0
			for _, suit := range Suits() {
				count += sd.Count(suit)
			}
			if count == 0 {
				continue
			}
			for _, suit := range Suits() {
				card := New(rank, suit)
				if scratch.Count(card) > 0 {
					existing[card] += count
				}
				recordMissing(card, SetMin-count)
			}
		}
	}
	if objective.NumRuns > 0 {
		DefaultLUT.ensure()
		for jokers := 0; jokers <= MaxRunJokers; jokers++ {
			for _, suit := range Suits() {
				vector := rundexToVector(scratch.rundex[suit])
				for _, rec := range DefaultLUT.runs[jokers][vector] {
					for i, hasJoker := range rec.Jokers {
						rank := rec.Start + Rank(i)
						if hasJoker {
							recordMissing(New(rank, suit), jokers)
						} else {
							existing[New(rank, suit)]++
						}
					}
				}
			}
		}
	}
	return missing, existing
}
