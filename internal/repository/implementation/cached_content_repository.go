package implementation

import (
	"context"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

const cachedContentKey = "site-content"

type cachedRecord struct {
	doc       *entity.WebsiteContent
	updatedAt time.Time
}

// CachedContentRepository is a read-through cache in front of the database
// repository. The public site hits GET /content on every page load; the
// document only changes when the admin commits, so reads come from memory
// until a replace (or a content.updated event from another instance)
// invalidates the entry.
type CachedContentRepository struct {
	inner contract.ContentRepository
	cache *cache.Cache
}

func NewCachedContentRepository(inner contract.ContentRepository, ttl time.Duration) *CachedContentRepository {
	return &CachedContentRepository{
		inner: inner,
		cache: cache.New(ttl, 2*ttl),
	}
}

var _ contract.ContentRepository = (*CachedContentRepository)(nil)

func (r *CachedContentRepository) Fetch(ctx context.Context) (*entity.WebsiteContent, time.Time, error) {
	if x, found := r.cache.Get(cachedContentKey); found {
		rec := x.(cachedRecord)
		return rec.doc.Clone(), rec.updatedAt, nil
	}

	doc, updatedAt, err := r.inner.Fetch(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	r.cache.Set(cachedContentKey, cachedRecord{doc: doc.Clone(), updatedAt: updatedAt}, cache.DefaultExpiration)
	return doc, updatedAt, nil
}

func (r *CachedContentRepository) Replace(ctx context.Context, doc *entity.WebsiteContent) (time.Time, error) {
	updatedAt, err := r.inner.Replace(ctx, doc)
	if err != nil {
		return time.Time{}, err
	}
	r.cache.Set(cachedContentKey, cachedRecord{doc: doc.Clone(), updatedAt: updatedAt}, cache.DefaultExpiration)
	return updatedAt, nil
}

// Invalidate drops the cached document. Called by the event consumer when a
// replace happened elsewhere.
func (r *CachedContentRepository) Invalidate() {
	r.cache.Delete(cachedContentKey)
}
