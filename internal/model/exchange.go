package model

import (
	"time"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestAccepted RequestStatus = "ACCEPTED"
	RequestRefused  RequestStatus = "REFUSED"
	// RequestCancelled is reserved for requester withdrawal; no operation
	// transitions into it yet.
	RequestCancelled RequestStatus = "CANCELLED"
)

type Decision string

const (
	DecisionAccept Decision = "ACCEPT"
	DecisionRefuse Decision = "REFUSE"
)

// ExchangeRequest is a counter-offer of one book for another.
type ExchangeRequest struct {
	ID              int           `json:"-" db:"id"`
	RequestUid      string        `json:"requestUid" db:"request_uid"`
	ListingID       int           `json:"-" db:"listing_id"`
	ListingUid      string        `json:"listingUid" db:"listing_uid"`
	Requester       string        `json:"requester" db:"requester"`
	BookTitle       string        `json:"bookTitle" db:"book_title"`
	BookDescription string        `json:"bookDescription" db:"book_description"`
	BookPhoto       string        `json:"bookPhoto" db:"book_photo"`
	Message         string        `json:"message" db:"message"`
	Status          RequestStatus `json:"status" db:"status"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}

type ProposeExchangeRequest struct {
	BookTitle       string `json:"bookTitle" validate:"required,max=150"`
	BookDescription string `json:"bookDescription"`
	BookPhoto       string `json:"bookPhoto" validate:"required"`
	Message         string `json:"message"`
}

type ExchangeInbox struct {
	Received []ExchangeRequest `json:"received"`
	Sent     []ExchangeRequest `json:"sent"`
}

type Evaluation struct {
	ID         int       `json:"-" db:"id"`
	Seller     string    `json:"seller" db:"seller"`
	Buyer      string    `json:"buyer" db:"buyer"`
	ListingUid *string   `json:"listingUid,omitempty" db:"listing_uid"`
	Stars      int       `json:"stars" db:"stars"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

type CreateEvaluationRequest struct {
	Seller     string  `json:"seller" validate:"required"`
	ListingUid *string `json:"listingUid,omitempty"`
	Stars      int     `json:"stars" validate:"required,min=1,max=5"`
	Comment    string  `json:"comment"`
}
