package catalog

import (
	"context"
	"fmt"

	"github.com/abhiguop/netflix/internal/domain"
	"github.com/abhiguop/netflix/internal/log"
)

type TitleRepository struct {
	client *Client
}

func NewTitleRepository(client *Client) domain.TitleRepository {
	return &TitleRepository{
		client: client,
	}
}

// titlePayload is the wire shape of a catalog title entry
type titlePayload struct {
	ID              string
	Name            string
	Description     string
	Genres          []string
	Year            int
	DurationSeconds float64 `json:"durationSeconds"`
	VideoURL        string  `json:"videoUrl"`
	MimeType        string  `json:"mimeType"`
	ThumbnailURL    string  `json:"thumbnailUrl"`
	Rating          float64
}

const titleFields = `
    id
    name
    description
    genres
    year
    durationSeconds
    videoUrl
    mimeType
    thumbnailUrl
    rating
`

func (r *TitleRepository) GetTitles(ctx context.Context) ([]*domain.Title, error) {
	query := `
        query {
            titles {` + titleFields + `}
        }
    `

	var response struct {
		Titles []titlePayload
	}

	if err := r.client.Query(ctx, query, nil, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch title catalog: %w", err)
	}

	titles := make([]*domain.Title, 0, len(response.Titles))
	for _, payload := range response.Titles {
		titles = append(titles, toDomain(payload))
	}

	log.Info("Fetched title catalog", "count", len(titles))
	return titles, nil
}

func (r *TitleRepository) GetTitle(ctx context.Context, id string) (*domain.Title, error) {
	query := `
        query ($id: ID!) {
            title(id: $id) {` + titleFields + `}
        }
    `

	variables := map[string]interface{}{
		"id": id,
	}

	var response struct {
		Title *titlePayload
	}

	if err := r.client.Query(ctx, query, variables, &response); err != nil {
		return nil, fmt.Errorf("failed to fetch title %s: %w", id, err)
	}

	if response.Title == nil {
		return nil, fmt.Errorf("title %s not found", id)
	}

	return toDomain(*response.Title), nil
}

func toDomain(payload titlePayload) *domain.Title {
	return &domain.Title{
		ID:              payload.ID,
		Name:            payload.Name,
		Description:     payload.Description,
		Genres:          payload.Genres,
		Year:            payload.Year,
		DurationSeconds: payload.DurationSeconds,
		VideoURL:        payload.VideoURL,
		MimeType:        payload.MimeType,
		ThumbnailURL:    payload.ThumbnailURL,
		Rating:          payload.Rating,
	}
}
