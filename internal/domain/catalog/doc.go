// Package catalog holds the car model aggregate: entities, the sort order
// reconciliation rule and the service and repository contracts around them.
package catalog
