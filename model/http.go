package model

import (
	"encoding/json"
	"time"
)

// RenderRequest carries a score document in the same JSON form the CLI reads
// from *.score.json files.
type RenderRequest struct {
	Score       json.RawMessage `json:"score"`
	MutedStaves []int           `json:"muted_staves,omitempty"`
	MutedParts  []string        `json:"muted_parts,omitempty"`
}

type RenderedChordResult struct {
	Tick          int            `json:"tick"`
	DurationTicks int            `json:"duration_ticks"`
	Staff         int            `json:"staff"`
	Part          string         `json:"part,omitempty"`
	Timestamp     time.Duration  `json:"timestamp"`
	Duration      time.Duration  `json:"duration"`
	Articulations json.Marshaler `json:"articulations"`
}

type RenderResponse struct {
	RequestID string                `json:"request_id,omitempty"`
	Title     string                `json:"title"`
	Profile   string                `json:"profile"`
	Chords    []RenderedChordResult `json:"chords"`
}

type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty"`
	Error     string `json:"detail"`
}
