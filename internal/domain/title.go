package domain

// Title represents a single watchable entry in the streaming catalog
type Title struct {
	ID              string
	Name            string
	Description     string
	Genres          []string
	Year            int
	DurationSeconds float64
	VideoURL        string
	MimeType        string
	ThumbnailURL    string
	Rating          float64
}

// DisplayGenres returns a short genre summary suitable for a list row
func (t Title) DisplayGenres() string {
	switch len(t.Genres) {
	case 0:
		return ""
	case 1:
		return t.Genres[0]
	default:
		return t.Genres[0] + ", " + t.Genres[1]
	}
}
