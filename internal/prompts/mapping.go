package prompts

import "net/url"

// Filters contains optional criteria for prompt listings.
// Nil fields are ignored. CollectionID uses exact matching.
// Search uses case-insensitive contains matching on title and description.
type Filters struct {
	CollectionID *string `json:"collection_id,omitempty"`
	Search       *string `json:"search,omitempty"`
}

// Apply filters by collection, then by search term, and orders the
// result newest first.
func (f Filters) Apply(prompts []Prompt) []Prompt {
	if f.CollectionID != nil {
		prompts = FilterByCollection(prompts, *f.CollectionID)
	}
	if f.Search != nil {
		prompts = Search(prompts, *f.Search)
	}
	return SortByDate(prompts, true)
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Empty values are treated as absent.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("collection_id"); c != "" {
		f.CollectionID = &c
	}

	if s := values.Get("search"); s != "" {
		f.Search = &s
	}

	return f
}
