package events

import "time"

const PayoutFinalizedTopic = "agency.payout.finalized.v1"

type FinalizedPayoutLine struct {
	PayoutID     string `json:"payout_id"`
	ProducerID   string `json:"producer_id"`
	ProducerName string `json:"producer_name"`
	TotalPayout  int64  `json:"total_payout"`
}

// PayoutFinalizedEvent dikirim sekali per periode yang difinalisasi.
type PayoutFinalizedEvent struct {
	EventType   string                `json:"event_type"`
	RequestID   string                `json:"request_id,omitempty"`
	AgencyID    string                `json:"agency_id"`
	Month       int                   `json:"month"`
	Year        int                   `json:"year"`
	RunNumber   string                `json:"run_number"`
	FinalizedBy string                `json:"finalized_by"`
	TotalPayout int64                 `json:"total_payout"`
	Payouts     []FinalizedPayoutLine `json:"payouts"`
	OccurredAt  time.Time             `json:"occurred_at"`
}
