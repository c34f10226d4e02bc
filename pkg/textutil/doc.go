// Package textutil splits and partitions UTF-8 strings.
//
// SplitAt cuts a string at a byte offset and refuses offsets that fall
// inside a multi-byte rune. PartitionRunes routes each rune into one of two
// strings by predicate, keeping the order of both.
package textutil
