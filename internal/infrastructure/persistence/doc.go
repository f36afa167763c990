// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer for car models, their images and the brand and
// class lookup tables. Repositories translate gorm.ErrRecordNotFound into
// apperr.ErrNotFound and every other driver error into apperr.ErrPersistence.
package persistence
