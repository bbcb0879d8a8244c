package document

import (
	"slices"
	"strings"
	"time"
)

// SearchRequest is a set of optional constraints combined with AND.
// A nil or empty slice and a nil time both mean "no constraint".
type SearchRequest struct {
	TitlePrefixes    []string   `json:"titlePrefixes,omitempty"`
	ContainsContents []string   `json:"containsContents,omitempty"`
	AuthorIDs        []string   `json:"authorIds,omitempty"`
	CreatedFrom      *time.Time `json:"createdFrom,omitempty"`
	CreatedTo        *time.Time `json:"createdTo,omitempty"`
}

// IsEmpty reports whether the request places no constraint at all.
func (r SearchRequest) IsEmpty() bool {
	return len(r.TitlePrefixes) == 0 &&
		len(r.ContainsContents) == 0 &&
		len(r.AuthorIDs) == 0 &&
		r.CreatedFrom == nil &&
		r.CreatedTo == nil
}

// Matches reports whether d satisfies every constraint in r.
// Text comparisons are case-sensitive; both time bounds are inclusive.
func (r SearchRequest) Matches(d *Document) bool {
	if d == nil {
		return false
	}
	return r.matchTitle(d.Title) &&
		r.matchContent(d.Content) &&
		r.matchAuthor(d.Author.ID) &&
		r.matchCreated(d.Created)
}

func (r SearchRequest) matchTitle(title string) bool {
	if len(r.TitlePrefixes) == 0 {
		return true
	}
	for _, p := range r.TitlePrefixes {
		if strings.HasPrefix(title, p) {
			return true
		}
	}
	return false
}

func (r SearchRequest) matchContent(content string) bool {
	if len(r.ContainsContents) == 0 {
		return true
	}
	for _, s := range r.ContainsContents {
		if strings.Contains(content, s) {
			return true
		}
	}
	return false
}

func (r SearchRequest) matchAuthor(authorID string) bool {
	if len(r.AuthorIDs) == 0 {
		return true
	}
	return slices.Contains(r.AuthorIDs, authorID)
}

func (r SearchRequest) matchCreated(created time.Time) bool {
	if r.CreatedFrom != nil && created.Before(*r.CreatedFrom) {
		return false
	}
	if r.CreatedTo != nil && created.After(*r.CreatedTo) {
		return false
	}
	return true
}
