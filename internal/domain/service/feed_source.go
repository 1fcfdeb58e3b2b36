package service

import (
	"context"
)

// FeedSource defines where the raw product feed comes from
type FeedSource interface {
	// Fetch stores the current feed locally and returns its path
	Fetch(ctx context.Context) (string, error)
}
