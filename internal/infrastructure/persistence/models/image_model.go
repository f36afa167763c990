package models

import "github.com/MGTheTrain/car-catalog/internal/domain/images"

// ImageModel is the GORM database model for car model images
type ImageModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ModelID   int64  `gorm:"not null;index"`
	FileName  string `gorm:"not null;type:varchar(255)"`
	IsDefault bool   `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ImageModel) TableName() string {
	return "images"
}

// ToDomain converts GORM model to domain entity
func (m *ImageModel) ToDomain() *images.Image {
	return &images.Image{
		ID:        m.ID,
		ModelID:   m.ModelID,
		FileName:  m.FileName,
		IsDefault: m.IsDefault,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ImageModel) FromDomain(i *images.Image) {
	m.ID = i.ID
	m.ModelID = i.ModelID
	m.FileName = i.FileName
	m.IsDefault = i.IsDefault
}
