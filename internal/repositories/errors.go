package repositories

import (
	"errors"
	"fmt"
)

// ErrNotFound is the absent-record sentinel. Every per-kind error below wraps it,
// so callers that don't care about the kind can test errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("record not found")

var (
	ErrUserNotFound           = fmt.Errorf("user: %w", ErrNotFound)
	ErrPortfolioItemNotFound  = fmt.Errorf("portfolio item: %w", ErrNotFound)
	ErrOrderNotFound          = fmt.Errorf("order: %w", ErrNotFound)
	ErrFreelancerNotFound     = fmt.Errorf("freelancer: %w", ErrNotFound)
	ErrContactMessageNotFound = fmt.Errorf("contact message: %w", ErrNotFound)
	ErrSubscriberNotFound     = fmt.Errorf("newsletter subscriber: %w", ErrNotFound)

	ErrUsernameTaken = errors.New("username already taken")
)
