// Package ownership shows how values move, get replaced and get shared in Go.
//
// Go copies values on assignment and shares through pointers, so "moving a
// value out" of a container means removing it and leaving something valid in
// its place. Pop, SwapRemove, Replace and Take do exactly that for slices,
// struct fields and pointer fields.
//
// Rc is a reference-counted, read-only handle. Every Clone adds one holder,
// every Release drops one, and the optional release hook runs exactly once,
// when the last holder lets go. The garbage collector still owns the memory;
// the count tracks logical ownership, which is what callers that manage
// external resources care about.
//
// DerefEqual and DerefCompare compare what pointers point at. The == operator
// on pointers compares identity instead.
//
// # Usage
//
//	import "github.com/dmitrymomot/langkit/pkg/ownership"
//
//	s := ownership.NewRc("shirataki", ownership.WithRelease(func(v string) {
//	    log.Printf("%s released", v)
//	}))
//	t := s.Clone()
//	s.Release()
//	t.Release() // hook runs here
//
// # Error Handling
//
// SwapRemove returns ErrIndexOutOfRange for bad indexes. Get returns
// ErrReleased on a handle that has already been released, while Value and
// Clone panic with the same error because using a released handle is a bug.
package ownership
