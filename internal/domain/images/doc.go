// Package images holds the image aggregate of a car model and the contracts for
// its records and stored files.
package images
