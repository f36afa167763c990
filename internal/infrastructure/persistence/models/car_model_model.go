package models

import (
	"time"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CarModelModel is the GORM database model for car models (infrastructure concern)
type CarModelModel struct {
	ID                  int64           `gorm:"primaryKey;autoIncrement"`
	BrandID             *int64          `gorm:"index"`
	ClassID             *int64          `gorm:"index"`
	Name                string          `gorm:"not null;type:varchar(50)"`
	Code                string          `gorm:"not null;type:varchar(50);index"`
	Description         string          `gorm:"type:varchar(500)"`
	Features            string          `gorm:"type:varchar(500)"`
	Price               decimal.Decimal `gorm:"not null;type:decimal(18,2)"`
	DateOfManufacturing *time.Time
	SortOrder           int  `gorm:"not null;index"`
	IsActive            bool `gorm:"not null"`
	IsDeleted           bool `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (CarModelModel) TableName() string {
	return "car_models"
}

// ToDomain converts GORM model to domain entity
func (m *CarModelModel) ToDomain() *catalog.CarModel {
	return &catalog.CarModel{
		ID:                  m.ID,
		BrandID:             m.BrandID,
		ClassID:             m.ClassID,
		Name:                m.Name,
		Code:                m.Code,
		Description:         m.Description,
		Features:            m.Features,
		Price:               m.Price,
		DateOfManufacturing: m.DateOfManufacturing,
		SortOrder:           m.SortOrder,
		IsActive:            m.IsActive,
		IsDeleted:           m.IsDeleted,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CarModelModel) FromDomain(c *catalog.CarModel) {
	m.ID = c.ID
	m.BrandID = c.BrandID
	m.ClassID = c.ClassID
	m.Name = c.Name
	m.Code = c.Code
	m.Description = c.Description
	m.Features = c.Features
	m.Price = c.Price
	m.DateOfManufacturing = c.DateOfManufacturing
	m.SortOrder = c.SortOrder
	m.IsActive = c.IsActive
	m.IsDeleted = c.IsDeleted
}
