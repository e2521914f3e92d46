package events

import (
	"time"

	"go-agency/internal/commission"
)

const StatementIngestedTopic = "agency.statement.ingested.v1"

// StatementIngestedEvent dipublish oleh importer statement carrier setelah metrics per producer siap.
type StatementIngestedEvent struct {
	EventType   string                          `json:"event_type"`
	RequestID   string                          `json:"request_id,omitempty"`
	AgencyID    string                          `json:"agency_id"`
	StatementID string                          `json:"statement_id"`
	Month       int                             `json:"month"`
	Year        int                             `json:"year"`
	IngestedBy  string                          `json:"ingested_by"`
	Producers   []commission.SubProducerMetrics `json:"producers"`
	OccurredAt  time.Time                       `json:"occurred_at"`
}
