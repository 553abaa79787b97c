package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arcadia-zoo/zoo-api/internal/core/ports"
)

// LikeService fronts the document-store like counter.
type LikeService struct {
	likes  ports.LikeRepository
	logger zerolog.Logger
}

func NewLikeService(likes ports.LikeRepository, logger zerolog.Logger) *LikeService {
	return &LikeService{likes: likes, logger: logger}
}

// Like adds one like for the animal and returns the new total. The counter
// is created on first like; the increment is atomic in the store, so two
// concurrent likes both count.
func (s *LikeService) Like(ctx context.Context, animalID string) (int64, error) {
	count, err := s.likes.Increment(ctx, animalID)
	if err != nil {
		s.logger.Error().Err(err).Str("animal_id", animalID).Msg("like increment failed")
		return 0, err
	}
	return count, nil
}

// Likes returns the current total for the animal, 0 when nobody liked it yet.
func (s *LikeService) Likes(ctx context.Context, animalID string) (int64, error) {
	return s.likes.Count(ctx, animalID)
}
