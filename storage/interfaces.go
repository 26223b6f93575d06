package storage

import "home-finder/models"

// PropertyWriter is the interface any results export must satisfy.
type PropertyWriter interface {
	Write(props []*models.Property) error
	Close() error
}
