// Package models holds the GORM table mappings of the catalog: car models, their
// images and the brand and class lookups. Each model converts to and from its
// domain entity so GORM tags never leak into the domain packages.
package models
