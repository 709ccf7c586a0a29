package models

// DocStatus follows the draft/submitted/cancelled document lifecycle.
type DocStatus int32

const (
	DocStatusDraft     DocStatus = 0
	DocStatusSubmitted DocStatus = 1
	DocStatusCancelled DocStatus = 2
)
