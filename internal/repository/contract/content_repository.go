package contract

import (
	"context"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
)

// ContentRepository reads and writes the single site document. Replace is a
// last-writer-wins upsert; no version token is checked.
type ContentRepository interface {
	Fetch(ctx context.Context) (*entity.WebsiteContent, time.Time, error)
	Replace(ctx context.Context, doc *entity.WebsiteContent) (time.Time, error)
}
