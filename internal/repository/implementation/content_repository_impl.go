package implementation

import (
	"context"
	"errors"
	"time"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/mapper"
	"github.com/DhairyaS450/personal-website-sub000/internal/model"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
	"github.com/DhairyaS450/personal-website-sub000/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ContentMapper
}

func NewContentRepository(db *gorm.DB) contract.ContentRepository {
	return &ContentRepositoryImpl{
		db:     db,
		mapper: mapper.NewContentMapper(),
	}
}

func (r *ContentRepositoryImpl) Fetch(ctx context.Context) (*entity.WebsiteContent, time.Time, error) {
	var row model.SiteContent
	if err := r.db.WithContext(ctx).First(&row, model.ContentRecordId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, time.Time{}, apperror.ErrNotFound
		}
		return nil, time.Time{}, apperror.NewStoreError("fetch", err)
	}

	doc, err := r.mapper.ToEntity(&row)
	if err != nil {
		return nil, time.Time{}, apperror.NewStoreError("decode", err)
	}
	return doc, row.UpdatedAt, nil
}

func (r *ContentRepositoryImpl) Replace(ctx context.Context, doc *entity.WebsiteContent) (time.Time, error) {
	row, err := r.mapper.ToModel(doc)
	if err != nil {
		return time.Time{}, apperror.NewStoreError("encode", err)
	}
	row.UpdatedAt = time.Now()

	err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return time.Time{}, apperror.NewStoreError("replace", err)
	}
	return row.UpdatedAt, nil
}
