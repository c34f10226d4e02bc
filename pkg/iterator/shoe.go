package iterator

import "slices"

// Shoe is a shoe record in an inventory list.
type Shoe struct {
	Size  uint32
	Style string
}

// ShoesInSize returns the shoes of the given size, in their original order.
func ShoesInSize(shoes []Shoe, size uint32) []Shoe {
	return Collect(Filter(slices.Values(shoes), func(s Shoe) bool { return s.Size == size }))
}
