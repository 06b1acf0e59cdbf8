package mapper

import (
	"encoding/json"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/model"

	"gorm.io/datatypes"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToEntity(row *model.SiteContent) (*entity.WebsiteContent, error) {
	if row == nil {
		return nil, nil
	}
	var doc entity.WebsiteContent
	if err := json.Unmarshal(row.Content, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (m *ContentMapper) ToModel(doc *entity.WebsiteContent) (*model.SiteContent, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &model.SiteContent{
		Id:      model.ContentRecordId,
		Content: datatypes.JSON(raw),
	}, nil
}
