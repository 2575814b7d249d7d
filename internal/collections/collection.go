// Package collections implements the collection domain for PromptLab.
// A collection groups prompts; deleting one releases its prompts rather
// than deleting them.
package collections

import (
	"time"

	"github.com/JaimeStill/promptlab/pkg/validate"
)

// Field constraints. The validate tags on CreateCommand repeat these values.
const (
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// Collection is a named grouping of prompts.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCommand carries the data needed to create a new collection.
type CreateCommand struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// Validate checks the command against the collection field constraints.
func (c CreateCommand) Validate() error {
	return validate.Struct(c)
}

// List is the response body for the collection listing.
type List struct {
	Collections []Collection `json:"collections"`
	Total       int          `json:"total"`
}
