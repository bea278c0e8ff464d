package model

type EventKind string

const (
	EventListingViewed     EventKind = "listing.viewed"
	EventExchangeAccepted  EventKind = "exchange.accepted"
	EventEvaluationCreated EventKind = "evaluation.created"
)

// Event is the JSON payload published to the marketplace events topic.
type Event struct {
	Kind       EventKind `json:"kind"`
	ListingUid string    `json:"listingUid,omitempty"`
	RequestUid string    `json:"requestUid,omitempty"`
	Username   string    `json:"username,omitempty"`
}
