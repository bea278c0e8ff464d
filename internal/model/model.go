package model

import (
	"time"
)

type Category string

const (
	CategoryBooks       Category = "BOOKS"
	CategoryElectronics Category = "ELECTRONICS"
	CategoryClothing    Category = "CLOTHING"
	CategorySports      Category = "SPORTS"
	CategoryMusic       Category = "MUSIC"
	CategoryAccessories Category = "ACCESSORIES"
	CategoryOther       Category = "OTHER"
)

type Condition string

const (
	ConditionNew         Condition = "NEW"
	ConditionVeryGood    Condition = "VERY_GOOD"
	ConditionGood        Condition = "GOOD"
	ConditionFair        Condition = "FAIR"
	ConditionNeedsRepair Condition = "NEEDS_REPAIR"
)

type TransactionKind string

const (
	KindSell     TransactionKind = "SELL"
	KindExchange TransactionKind = "EXCHANGE"
	KindDonate   TransactionKind = "DONATE"
)

type ListingStatus string

const (
	ListingAvailable ListingStatus = "AVAILABLE"
	ListingReserved  ListingStatus = "RESERVED"
	ListingSold      ListingStatus = "SOLD"
	ListingWithdrawn ListingStatus = "WITHDRAWN"
)

// BookPriceCap is the maximum price of a book listing, in FCFA.
const BookPriceCap = 5000

const MaxPhotosPerListing = 5

type Listing struct {
	ID          int             `json:"-" db:"id"`
	ListingUid  string          `json:"listingUid" db:"listing_uid"`
	Owner       string          `json:"owner" db:"owner"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Price       int             `json:"price" db:"price"`
	Category    Category        `json:"category" db:"category"`
	Condition   Condition       `json:"condition" db:"condition"`
	Kind        TransactionKind `json:"kind" db:"kind"`
	Status      ListingStatus   `json:"status" db:"status"`
	City        string          `json:"city" db:"city"`
	Region      string          `json:"region" db:"region"`
	Views       int             `json:"views" db:"views"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

type ListingPhoto struct {
	ID        int       `json:"-" db:"id"`
	ListingID int       `json:"-" db:"listing_id"`
	Path      string    `json:"path" db:"path"`
	Position  int       `json:"position" db:"position"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type ListListings struct {
	Paging `json:",inline"`
	Items  []Listing `json:"items"`
}

// ListingFilter narrows the catalog query; zero values mean "no filter".
type ListingFilter struct {
	Query    string
	Category Category
	Kind     TransactionKind
	Region   string
	Owner    string
}

type ListingDetail struct {
	Listing     `json:",inline"`
	Photos      []ListingPhoto `json:"photos"`
	Evaluations []Evaluation   `json:"evaluations"`
}

type ListingDraftRequest struct {
	Title       string          `json:"title" validate:"required,max=150"`
	Description string          `json:"description" validate:"required"`
	Price       int             `json:"price" validate:"min=0"`
	Category    Category        `json:"category" validate:"required,oneof=BOOKS ELECTRONICS CLOTHING SPORTS MUSIC ACCESSORIES OTHER"`
	Condition   Condition       `json:"condition" validate:"required,oneof=NEW VERY_GOOD GOOD FAIR NEEDS_REPAIR"`
	Kind        TransactionKind `json:"kind" validate:"required,oneof=SELL EXCHANGE DONATE"`
	City        string          `json:"city" validate:"max=100"`
	Region      string          `json:"region" validate:"max=20"`
	PhotoCount  int             `json:"photoCount" validate:"min=0"`
}

// ListingDraft is the session-scoped state of the three-step publish flow.
// It lives only in the draft store and is discarded on confirm or expiry.
type ListingDraft struct {
	DraftUid  string              `json:"draftUid"`
	Owner     string              `json:"owner"`
	Fields    ListingDraftRequest `json:"fields"`
	CreatedAt time.Time           `json:"createdAt"`
}

type ConfirmListingRequest struct {
	FinalPrice int `json:"finalPrice" validate:"min=0"`
}
