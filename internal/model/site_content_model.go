package model

import (
	"time"

	"gorm.io/datatypes"
)

// ContentRecordId is the fixed key of the single content row. The whole
// document lives in one JSON column; there is nothing else to address.
const ContentRecordId uint = 1

type SiteContent struct {
	Id        uint           `gorm:"primaryKey"`
	Content   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (SiteContent) TableName() string {
	return "site_contents"
}
