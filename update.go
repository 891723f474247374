package liverpool

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// IterAdds enumerates every Add obtainable from hand for a table-resident
// Set, including the empty (no-op) Add. Candidate cards are every
// nonempty suit-or-joker combination drawable from the hand's remaining
// suits at set's rank, the same combinatorics setsFromColors already
// provides for building sets from scratch.
func IterAdds(hand *IndexedHand, set Set) []Add {
	adds := []Add{{}}
	suits := hand.setdex[set.Rank].Suits()
	for _, combo := range setsFromColors(suits, hand.Jokers(), 1) {
		add := make(Add, len(combo))
		for i, v := range combo {
			if v == jokerSlot {
				add[i] = Joker
			} else {
				add[i] = New(set.Rank, Suit(v))
			}
		}
		adds = append(adds, add)
	}
	return adds
}

// IterExtends enumerates every Extend obtainable from hand for a
// table-resident Run, including the empty (no-op) Extend. Builds a
// scratch hand seeded with the hand's own same-suit cards, the run's own
// cards (so that enumerated runs can contain the original run; those
// cards only ever form the overlap, never the extension), and the hand's
// jokers; runs that scratch hand's run enumerator and keeps every result
// that contiguously extends the original run on one or both ends.
func IterExtends(hand *IndexedHand, run Run, runIter RunIterator) []Extend {
	scratch := NewIndexedHand(hand.IterSuit(run.Suit)...)
	for _, c := range run.Cards() {
		scratch.Put(c.Dematerialize())
	}
	for i := 0; i < hand.Jokers(); i++ {
		scratch.Put(Joker)
	}

	extends := []Extend{{Run: run}}
	for _, extended := range runIter(scratch) {
		if ext, err := run.ExtendFrom(extended); err == nil {
			extends = append(extends, ext)
		}
	}
	return extends
}

// comboRef locates one combo (a Set or a Run, never both) within one
// owner's table meld, for IterUpdatesMulti's flattened backtracking
// order.
type comboRef struct {
	owner uuid.UUID
	index int
	set   *Set
	run   *Run
}

// flattenMelds lists every (owner, combo) pair across melds, ordered by
// owner ID (lexically) then combo position, so that IterUpdatesMulti's
// backtracking order — and hence its output order — is deterministic
// regardless of map iteration order.
func flattenMelds(melds map[uuid.UUID]Meld) ([]uuid.UUID, []comboRef) {
	owners := make([]uuid.UUID, 0, len(melds))
	for owner := range melds {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].String() < owners[j].String() })

	var refs []comboRef
	for _, owner := range owners {
		meld := melds[owner]
		for i := range meld.Sets {
			s := meld.Sets[i]
			refs = append(refs, comboRef{owner: owner, index: i, set: &s})
		}
		for i := range meld.Runs {
			r := meld.Runs[i]
			refs = append(refs, comboRef{owner: owner, index: i, run: &r})
		}
	}
	return owners, refs
}

// cloneMeldUpdate deep-copies a MeldUpdate's Adds/Extends maps.
func cloneMeldUpdate(mu MeldUpdate) MeldUpdate {
	out := NewMeldUpdate()
	for k, v := range mu.Adds {
		out.Adds[k] = append(Add(nil), v...)
	}
	for k, v := range mu.Extends {
		out.Extends[k] = v
	}
	return out
}

// meldUpdateKey builds a canonical string key for one owner's MeldUpdate,
// for deduplicating IterUpdatesMulti's results.
func meldUpdateKey(mu MeldUpdate) string {
	var b strings.Builder
	keys := make([]int, 0, len(mu.Adds))
	for k := range mu.Adds {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "|A%d:%s", k, CardFormatter(mu.Adds[k]))
	}
	keys = keys[:0]
	for k := range mu.Extends {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "|E%d:%s", k, mu.Extends[k])
	}
	return b.String()
}

// IterUpdatesMulti enumerates every distinct way to simultaneously update
// a collection of table melds owned by (possibly several) other players,
// from a single hand's cards. Backtracks over the flattened list of
// (owner, combo) pairs: at each combo, tries every available Add/Extend
// (including the no-op), speculatively takes its cards from hand, and
// recurses; a take failure prunes that branch. Each complete assignment
// across all combos is yielded as one owner-to-MeldUpdate mapping.
func IterUpdatesMulti(hand *IndexedHand, melds map[uuid.UUID]Meld, runIter RunIterator) []map[uuid.UUID]MeldUpdate {
	owners, refs := flattenMelds(melds)

	current := make(map[uuid.UUID]MeldUpdate, len(owners))
	for _, owner := range owners {
		current[owner] = NewMeldUpdate()
	}

	var results []map[uuid.UUID]MeldUpdate
	seen := make(map[string]bool)

	var recurse func(pos int)
	recurse = func(pos int) {
		if pos == len(refs) {
			var key strings.Builder
			snapshot := make(map[uuid.UUID]MeldUpdate, len(owners))
			for _, owner := range owners {
				mu := current[owner]
				snapshot[owner] = cloneMeldUpdate(mu)
				key.WriteString(owner.String())
				key.WriteString(meldUpdateKey(mu))
				key.WriteString(";;")
			}
			if !seen[key.String()] {
				seen[key.String()] = true
				results = append(results, snapshot)
			}
			return
		}
		ref := refs[pos]
		switch {
		case ref.set != nil:
			for _, add := range IterAdds(hand, *ref.set) {
				if len(add) == 0 {
					recurse(pos + 1)
					continue
				}
				if err := hand.TakeCombo(add); err != nil {
					hand.Rollback()
					continue
				}
				hand.Commit()
				current[ref.owner].Adds[ref.index] = add
				recurse(pos + 1)
				delete(current[ref.owner].Adds, ref.index)
				hand.Undo()
			}
		case ref.run != nil:
			for _, ext := range IterExtends(hand, *ref.run, runIter) {
				if ext.Empty() {
					recurse(pos + 1)
					continue
				}
				if err := hand.TakeCombo(ext.Cards()); err != nil {
					hand.Rollback()
					continue
				}
				hand.Commit()
				current[ref.owner].Extends[ref.index] = ext
				recurse(pos + 1)
				delete(current[ref.owner].Extends, ref.index)
				hand.Undo()
			}
		}
	}

	hand.Commit()
	recurse(0)
	hand.Undo()

	return results
}
