package prompts

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// MinContentLength is the trimmed length at which content counts as usable.
const MinContentLength = 10

// Variable names are letters, digits and underscores in any script.
var variablePattern = regexp.MustCompile(`\{\{([\p{L}\p{N}_]+)\}\}`)

// FilterByCollection returns the prompts whose collection_id equals id.
// A prompt without a collection never matches.
func FilterByCollection(prompts []Prompt, id string) []Prompt {
	result := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.CollectionID != nil && *p.CollectionID == id {
			result = append(result, p)
		}
	}
	return result
}

// Search returns the prompts whose title or description contains q,
// ignoring case. Content is not searched. An empty q matches everything.
func Search(prompts []Prompt, q string) []Prompt {
	q = strings.ToLower(q)
	result := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			(p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q)) {
			result = append(result, p)
		}
	}
	return result
}

// SortByDate returns a copy of prompts stably ordered by created_at.
// Listings pass descending=true for newest first; updated_at is not
// considered, so recently edited prompts do not move up.
func SortByDate(prompts []Prompt, descending bool) []Prompt {
	sorted := slices.Clone(prompts)
	if sorted == nil {
		sorted = []Prompt{}
	}
	slices.SortStableFunc(sorted, func(a, b Prompt) int {
		if descending {
			return b.CreatedAt.Compare(a.CreatedAt)
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return sorted
}

// ExtractVariables returns the names of {{name}} placeholders in order of
// appearance. Repeated names are kept.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		vars = append(vars, m[1])
	}
	return vars
}

// ValidContent reports whether content has at least MinContentLength
// characters once surrounding whitespace is removed.
func ValidContent(content string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(content)) >= MinContentLength
}
