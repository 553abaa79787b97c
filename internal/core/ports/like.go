package ports

import "context"

// LikeRepository is the document-store counter behind animal likes.
type LikeRepository interface {
	// Increment adds one like atomically, creating the counter on first
	// use, and returns the new total.
	Increment(ctx context.Context, animalID string) (int64, error)
	// Count returns the current total, 0 when no counter exists yet.
	Count(ctx context.Context, animalID string) (int64, error)
}

// LikeService exposes the like counter to the HTTP layer.
type LikeService interface {
	Like(ctx context.Context, animalID string) (int64, error)
	Likes(ctx context.Context, animalID string) (int64, error)
}
