package domain

// CreateInput is the payload for creating a journal entry.
// Sentiment is optional and coerced to neutral when absent or unrecognized
type CreateInput struct {
	Transcription string   `json:"transcription" validate:"required,min=1" example:"Today I went for a long walk."`
	Sentiment     string   `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative" example:"positive"`
	Summary       string   `json:"summary,omitempty" example:"A good day outdoors"`
	Keywords      []string `json:"keywords,omitempty" example:"walk,outdoors"`
	Tags          []string `json:"tags,omitempty" example:"exercise"`
}

// CreateResult confirms a created entry
type CreateResult struct {
	Message string `json:"message" example:"Journal entry created."`
	EntryID string `json:"entryId" example:"1b4e28ba-2fa1-11d2-883f-0016d3cca427"`
}

// UpdateInput is the payload for replacing an entry's mutable fields.
// CreatedAt is immutable and never touched by updates
type UpdateInput struct {
	Transcription string   `json:"transcription" validate:"required,min=1"`
	Sentiment     string   `json:"sentiment,omitempty" validate:"omitempty,oneof=positive neutral negative"`
	Summary       string   `json:"summary,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// ListQuery carries the entries list filters parsed from the query string
type ListQuery struct {
	Sentiment string // filter by exact sentiment label
	Search    string // case-insensitive substring over transcription and summary
	Sort      string // newest | oldest, default newest
	Page      int    // 1-based, default 1
	Limit     int    // default 10
}

// ListResult mirrors the paginated list response shape
type ListResult struct {
	Entries      []Entry `json:"entries"`
	TotalEntries int     `json:"totalEntries"`
	TotalPages   int     `json:"totalPages"`
	CurrentPage  int     `json:"currentPage"`
}

// DeleteResult confirms a deletion
type DeleteResult struct {
	Message string `json:"message" example:"Journal entry deleted."`
}

// UpdateResult wraps the updated entry
type UpdateResult struct {
	Message string `json:"message" example:"Journal entry updated."`
	Entry   Entry  `json:"updatedEntry"`
}
