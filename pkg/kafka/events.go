package kafka

import "time"

type BatchEventType string

const (
	BatchGenerated BatchEventType = "GENERATED"
	BatchActivated BatchEventType = "ACTIVATED"
	BatchDeleted   BatchEventType = "DELETED"
)

// BatchEvent is published on BatchTopic whenever the recommendation batch set changes.
type BatchEvent struct {
	Type      BatchEventType `json:"type"`
	BatchID   int            `json:"batchId"`
	RunID     string         `json:"runId,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// GenerateRequest is consumed from GenerateTopic.
type GenerateRequest struct {
	RequestedBy string    `json:"requestedBy"`
	Timestamp   time.Time `json:"timestamp"`
}
