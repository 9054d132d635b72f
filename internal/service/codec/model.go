package codec

import "time"

// ProcessRequest describes one batch of items to transcode.
type ProcessRequest struct {
	// Scheme is the registry name of the codec.
	Scheme string
	// Direction tells whether items are encoded or decoded.
	Direction Direction
	// Inputs are the items in the order they were given.
	Inputs []string
}

// Result is the outcome of transcoding one item.
type Result struct {
	// Index is the position of the item in the request.
	Index int `json:"index" yaml:"index"`
	// Input is the original item.
	Input string `json:"input" yaml:"input"`
	// Output is the transcoded item, empty on failure.
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	// Error is the failure message, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Err is the failure itself.
	Err error `json:"-" yaml:"-"`
	// IsCached indicates that the output came from the result cache.
	IsCached bool `json:"-" yaml:"-"`
}

// ItemError describes a failed item for the summary.
type ItemError struct {
	// Index is the position of the item in the request.
	Index int
	// Input is a shortened copy of the item.
	Input string
	// ErrorMessage is the failure message.
	ErrorMessage string
}

// Statistics tracks the outcome of a processing session.
type Statistics struct {
	// Scheme is the scheme of the last request.
	Scheme string
	// Direction is the direction of the last request.
	Direction Direction
	// ItemsProcessed is the number of items that were attempted.
	ItemsProcessed int64
	// ItemsSucceeded is the number of items transcoded successfully.
	ItemsSucceeded int64
	// ItemsFailed is the number of items that failed.
	ItemsFailed int64
	// CacheHits is the number of items answered from the result cache.
	CacheHits int64
	// BytesIn is the total size of processed items.
	BytesIn int64
	// BytesOut is the total size of produced outputs.
	BytesOut int64
	// StartTime is when processing started.
	StartTime time.Time
	// EndTime is when processing finished.
	EndTime time.Time
	// Errors lists failed items.
	Errors []ItemError
}
