package model

import (
	"time"
)

type User struct {
	ID            int        `json:"-" db:"id"`
	Username      string     `json:"username" db:"username"`
	FullName      string     `json:"fullName" db:"full_name"`
	Phone         string     `json:"phone" db:"phone"`
	City          string     `json:"city" db:"city"`
	Region        string     `json:"region" db:"region"`
	Bio           string     `json:"bio" db:"bio"`
	Avatar        string     `json:"avatar" db:"avatar"`
	Certified     bool       `json:"certified" db:"certified"`
	CertifiedAt   *time.Time `json:"certifiedAt,omitempty" db:"certified_at"`
	BadgeID       *int       `json:"-" db:"badge_id"`
	AverageRating float64    `json:"averageRating" db:"average_rating"`
	SalesCount    int        `json:"salesCount" db:"sales_count"`
	ExchangeCount int        `json:"exchangeCount" db:"exchange_count"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
}

type BadgeColor string

const (
	BadgeBlue   BadgeColor = "BLUE"
	BadgeGold   BadgeColor = "GOLD"
	BadgeGreen  BadgeColor = "GREEN"
	BadgePurple BadgeColor = "PURPLE"
)

type Badge struct {
	ID          int        `json:"id" db:"id"`
	Name        string     `json:"name" db:"name"`
	Description string     `json:"description" db:"description"`
	Icon        string     `json:"icon" db:"icon"`
	Color       BadgeColor `json:"color" db:"color"`
	Image       string     `json:"image" db:"image"`
	Active      bool       `json:"active" db:"active"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// Profile is the public view of a user. The badge is exposed only while
// the user is certified and the badge stays active.
type Profile struct {
	User  `json:",inline"`
	Badge *Badge `json:"badge,omitempty"`
}

type UpdateProfileRequest struct {
	FullName string `json:"fullName" validate:"max=150"`
	Phone    string `json:"phone" validate:"max=20"`
	City     string `json:"city" validate:"max=100"`
	Region   string `json:"region" validate:"max=20"`
	Bio      string `json:"bio" validate:"max=300"`
}

type DecisionStatus string

const (
	DecisionPending  DecisionStatus = "PENDING"
	DecisionApproved DecisionStatus = "APPROVED"
	DecisionRefused  DecisionStatus = "REFUSED"
)

type VerificationRequest struct {
	ID         int            `json:"id" db:"id"`
	Username   string         `json:"username" db:"username"`
	Message    string         `json:"message" db:"message"`
	Document   string         `json:"document" db:"document"`
	Status     DecisionStatus `json:"status" db:"status"`
	AdminReply string         `json:"adminReply" db:"admin_reply"`
	CreatedAt  time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time      `json:"updatedAt" db:"updated_at"`
}

type CreateVerificationRequest struct {
	Message  string `json:"message" validate:"required"`
	Document string `json:"document"`
}

type ItemRequest struct {
	ID          int            `json:"id" db:"id"`
	Requester   string         `json:"requester" db:"requester"`
	Name        string         `json:"name" db:"name"`
	Category    Category       `json:"category" db:"category"`
	Description string         `json:"description" db:"description"`
	MaxBudget   int            `json:"maxBudget" db:"max_budget"`
	Status      DecisionStatus `json:"status" db:"status"`
	AdminReply  string         `json:"adminReply" db:"admin_reply"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

type CreateItemRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Category    Category `json:"category" validate:"required,oneof=BOOKS ELECTRONICS CLOTHING SPORTS MUSIC ACCESSORIES OTHER"`
	Description string   `json:"description" validate:"required"`
	MaxBudget   int      `json:"maxBudget" validate:"min=0"`
}

type CreateBadgeRequest struct {
	Name        string     `json:"name" validate:"required,max=80"`
	Description string     `json:"description"`
	Icon        string     `json:"icon" validate:"max=10"`
	Color       BadgeColor `json:"color" validate:"required,oneof=BLUE GOLD GREEN PURPLE"`
	Image       string     `json:"image"`
}

// BatchDecideRequest resolves several pending requests in one admin call.
// Each item is decided independently.
type BatchDecideRequest struct {
	IDs        []int          `json:"ids" validate:"required,min=1"`
	Decision   DecisionStatus `json:"decision" validate:"required,oneof=APPROVED REFUSED"`
	AdminReply string         `json:"adminReply"`
	BadgeID    *int           `json:"badgeId,omitempty"`
}

type BatchDecideResult struct {
	Decided int   `json:"decided"`
	Failed  []int `json:"failed,omitempty"`
}
