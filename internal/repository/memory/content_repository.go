package memory

import (
	"context"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const contentKey = "site-content"

type record struct {
	doc       *entity.WebsiteContent
	updatedAt time.Time
}

// ContentRepository keeps the document in process memory. Used by the
// controller tests and as a scratch store when no database is configured.
type ContentRepository struct {
	cache *cache.Cache
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.ContentRepository = (*ContentRepository)(nil)

func (r *ContentRepository) Fetch(ctx context.Context) (*entity.WebsiteContent, time.Time, error) {
	x, found := r.cache.Get(contentKey)
	if !found {
		return nil, time.Time{}, apperror.ErrNotFound
	}
	rec := x.(record)
	return rec.doc.Clone(), rec.updatedAt, nil
}

func (r *ContentRepository) Replace(ctx context.Context, doc *entity.WebsiteContent) (time.Time, error) {
	now := time.Now()
	r.cache.Set(contentKey, record{doc: doc.Clone(), updatedAt: now}, cache.NoExpiration)
	return now, nil
}
