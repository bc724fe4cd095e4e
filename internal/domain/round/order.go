package round

import "sort"

// Swap places First immediately before Then when both are present.
type Swap struct {
	First ID
	Then  ID
}

// Order sorts rounds ascending and then applies the swap table.
type Order struct {
	Swaps []Swap
}

// DefaultOrder places round 9 before round 8, which were played in
// reverse calendar order this season.
func DefaultOrder() Order {
	return Order{Swaps: []Swap{{First: 9, Then: 8}}}
}

// Positions returns the display position of every distinct round in ids.
func (o Order) Positions(ids []ID) map[ID]int {
	distinct := make([]ID, 0, len(ids))
	seen := make(map[ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	sort.Slice(distinct, func(i, j int) bool { return distinct[i] < distinct[j] })

	for _, swap := range o.Swaps {
		distinct = applySwap(distinct, swap)
	}

	out := make(map[ID]int, len(distinct))
	for i, id := range distinct {
		out[id] = i
	}
	return out
}

// Sort orders ids in place.
func (o Order) Sort(ids []ID) {
	positions := o.Positions(ids)
	sort.SliceStable(ids, func(i, j int) bool { return positions[ids[i]] < positions[ids[j]] })
}

func applySwap(ids []ID, swap Swap) []ID {
	from, to := -1, -1
	for i, id := range ids {
		switch id {
		case swap.First:
			from = i
		case swap.Then:
			to = i
		}
	}
	if from < 0 || to < 0 || from == to-1 {
		return ids
	}

	moved := make([]ID, 0, len(ids))
	for i, id := range ids {
		if i == from {
			continue
		}
		if i == to {
			moved = append(moved, swap.First)
		}
		moved = append(moved, id)
	}
	return moved
}
