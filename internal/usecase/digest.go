package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/lucidfeed-wq/Lucid-Feed-sub003/internal/domain"
)

// DigestUsecase manages the addressable digest groupings that the
// current_digest scope targets. Digests carry no content themselves; items
// reference them by id.
type DigestUsecase struct {
	digests DigestRepository
}

func NewDigestUsecase(digests DigestRepository) *DigestUsecase {
	return &DigestUsecase{digests: digests}
}

// Register creates or refreshes a digest. A zero date defaults to now.
func (uc *DigestUsecase) Register(ctx context.Context, digest domain.Digest) error {
	if digest.ID == "" {
		return fmt.Errorf("digest id is required")
	}
	if digest.Date.IsZero() {
		digest.Date = time.Now().UTC()
	}
	return uc.digests.Upsert(ctx, digest)
}

func (uc *DigestUsecase) Get(ctx context.Context, id string) (domain.Digest, error) {
	return uc.digests.Get(ctx, id)
}

// List returns digests newest-first, so the first entry is the current one.
func (uc *DigestUsecase) List(ctx context.Context, limit int) ([]domain.Digest, error) {
	return uc.digests.List(ctx, limit)
}
