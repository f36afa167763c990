package models

import "github.com/MGTheTrain/car-catalog/internal/domain/catalog"

// BrandModel is the GORM database model for the brand lookup table
type BrandModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (BrandModel) TableName() string {
	return "brands"
}

// ToDomain converts GORM model to domain entity
func (m *BrandModel) ToDomain() *catalog.Brand {
	return &catalog.Brand{ID: m.ID, Name: m.Name}
}

// ClassModel is the GORM database model for the class lookup table
type ClassModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"not null;type:varchar(50)"`
}

// TableName specifies the table name for GORM
func (ClassModel) TableName() string {
	return "classes"
}

// ToDomain converts GORM model to domain entity
func (m *ClassModel) ToDomain() *catalog.Class {
	return &catalog.Class{ID: m.ID, Name: m.Name}
}

// All returns every model managed by migrations, in dependency order
func All() []any {
	return []any{&BrandModel{}, &ClassModel{}, &CarModelModel{}, &ImageModel{}}
}
