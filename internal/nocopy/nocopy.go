// Package nocopy provides a marker that makes `go vet` (copylocks) report
// accidental copies of the struct embedding it.
package nocopy

// NoCopy may be embedded into structs which must not be copied after first
// use. It has no runtime effect.
type NoCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*NoCopy) Lock() {}

// Unlock is a no-op used by -copylocks checker from `go vet`.
func (*NoCopy) Unlock() {}
