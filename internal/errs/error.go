package errs

import (
	"errors"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
	ErrConflict  = errors.New("conflict")

	ErrExchangeBooksOnly = errors.New("exchange listings are for books only")
	ErrBookPriceCap      = errors.New("book price cannot exceed 5000 FCFA")
	ErrTooManyPhotos     = errors.New("a listing can have at most 5 photos")
	ErrNotExchangeable   = errors.New("listing is not offered for exchange")
	ErrNotAvailable      = errors.New("listing is no longer available")
	ErrOwnListing        = errors.New("cannot exchange your own listing")
	ErrPhotoRequired     = errors.New("a photo of the proposed book is required")
	ErrPendingExists     = errors.New("a pending request already exists")
	ErrSelfEvaluation    = errors.New("cannot evaluate yourself")
	ErrSelfConversation  = errors.New("cannot start a conversation with yourself")
	ErrDraftExpired      = errors.New("draft session expired")
)

// IsValidation reports whether err is one of the precondition failures that
// map to a 400 rather than a 409/404.
func IsValidation(err error) bool {
	for _, e := range []error{
		ErrExchangeBooksOnly, ErrBookPriceCap, ErrTooManyPhotos,
		ErrNotExchangeable, ErrNotAvailable, ErrOwnListing, ErrPhotoRequired,
		ErrSelfEvaluation, ErrSelfConversation,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
