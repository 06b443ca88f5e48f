// Package domain contains the core data types and the error taxonomy of the
// MDS backend. It has no dependencies outside the standard library and is
// imported by every other internal package (repo, service, handler).
package domain

import "time"

// Service is a named offering in the catalog.
// UpdatedAt is nil until the first successful update.
type Service struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
