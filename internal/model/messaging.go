package model

import (
	"time"
)

type Conversation struct {
	ID           int       `json:"id" db:"id"`
	ParticipantA string    `json:"-" db:"participant_a"`
	ParticipantB string    `json:"-" db:"participant_b"`
	ListingUid   *string   `json:"listingUid,omitempty" db:"listing_uid"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

type Message struct {
	ID             int       `json:"id" db:"id"`
	ConversationID int       `json:"-" db:"conversation_id"`
	Sender         string    `json:"sender" db:"sender"`
	Content        string    `json:"content" db:"content"`
	Read           bool      `json:"read" db:"read"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}

// ConversationView is the inbox row: the conversation plus what the list
// page renders for it.
type ConversationView struct {
	Conversation `json:",inline"`
	Other        string   `json:"other"`
	LastMessage  *Message `json:"lastMessage,omitempty"`
	Unread       int      `json:"unread"`
}

type StartConversationRequest struct {
	With       string  `json:"with" validate:"required"`
	ListingUid *string `json:"listingUid,omitempty"`
}

type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}
