// Package prompts implements the prompt domain for PromptLab.
// It provides types, in-memory data access, list utilities, and HTTP
// handlers for managing prompt templates and their collection membership.
package prompts

import (
	"fmt"
	"time"

	"github.com/JaimeStill/promptlab/pkg/patch"
	"github.com/JaimeStill/promptlab/pkg/validate"
)

// Field constraints. The validate tags on the command structs repeat these values.
const (
	TitleMaxLength       = 200
	DescriptionMaxLength = 500
)

// Prompt is a reusable text template, optionally assigned to a collection.
type Prompt struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  *string   `json:"description"`
	CollectionID *string   `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateCommand carries the data needed to create a new prompt.
type CreateCommand struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Content      string  `json:"content" validate:"required,min=1"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// Validate checks the command against the prompt field constraints.
func (c CreateCommand) Validate() error {
	return validate.Struct(c)
}

// UpdateCommand replaces every mutable field of an existing prompt.
// Omitted optional fields are cleared.
type UpdateCommand struct {
	Title        string  `json:"title" validate:"required,min=1,max=200"`
	Content      string  `json:"content" validate:"required,min=1"`
	Description  *string `json:"description" validate:"omitempty,max=500"`
	CollectionID *string `json:"collection_id"`
}

// Validate checks the command against the prompt field constraints.
func (c UpdateCommand) Validate() error {
	return validate.Struct(c)
}

// PatchCommand carries a partial update. Omitted fields keep their current
// value; an explicit null clears description or collection_id.
type PatchCommand struct {
	Title        patch.Field[string] `json:"title,omitzero"`
	Content      patch.Field[string] `json:"content,omitzero"`
	Description  patch.Field[string] `json:"description,omitzero"`
	CollectionID patch.Field[string] `json:"collection_id,omitzero"`
}

// Validate checks the supplied fields only.
func (c PatchCommand) Validate() error {
	return validate.All(
		patchField("title", c.Title, fmt.Sprintf("required,max=%d", TitleMaxLength)),
		patchField("content", c.Content, "required"),
		patchField("description", c.Description, fmt.Sprintf("omitempty,max=%d", DescriptionMaxLength)),
	)
}

// Apply merges the command into p. Timestamps are left to the caller.
func (c PatchCommand) Apply(p Prompt) Prompt {
	p.Title = c.Title.Resolve(p.Title)
	p.Content = c.Content.Resolve(p.Content)
	p.Description = c.Description.ResolvePtr(p.Description)
	p.CollectionID = normalizeRef(c.CollectionID.ResolvePtr(p.CollectionID))
	return p
}

// List is the response body for the prompt listing.
type List struct {
	Prompts []Prompt `json:"prompts"`
	Total   int      `json:"total"`
}

// Variables reports the template variables found in a prompt's content.
type Variables struct {
	ID        string   `json:"id"`
	Variables []string `json:"variables"`
	Valid     bool     `json:"valid"`
}

// patchField checks a supplied field against tag. Omitted fields pass and an
// explicit null is checked as the empty string.
func patchField(field string, f patch.Field[string], tag string) error {
	if !f.Set {
		return nil
	}
	return validate.Var(field, f.Value, tag)
}

// normalizeRef treats an empty collection reference as no reference.
func normalizeRef(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
