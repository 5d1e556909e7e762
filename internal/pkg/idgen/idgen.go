// Package idgen abstracts identifier generation so services can take it as
// an injected dependency and tests can supply deterministic values.
package idgen

import "github.com/google/uuid"

type Generator interface {
	NewID() string
}

// UUID generates random v4 identifiers. This is the production generator.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}
