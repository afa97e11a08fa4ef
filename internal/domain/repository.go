package domain

import "context"

// TitleRepository defines the operations available against the title catalog
type TitleRepository interface {
	// GetTitles fetches the complete catalog of watchable titles
	GetTitles(ctx context.Context) ([]*Title, error)

	// GetTitle fetches a single title by its catalog ID
	GetTitle(ctx context.Context, id string) (*Title, error)
}
