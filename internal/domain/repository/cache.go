package repository

import "context"

// TreeCache stores the serialized menu tree between writes. Every
// Invalidate starts a new generation; a tree built under an older
// generation is never served.
type TreeCache interface {
	// Get returns the current generation and the tree cached for it, nil
	// on a miss
	Get(ctx context.Context) (tree []byte, generation int64, err error)
	// Set stores tree for the generation returned by an earlier Get
	Set(ctx context.Context, generation int64, tree []byte) error
	Invalidate(ctx context.Context) error
}
