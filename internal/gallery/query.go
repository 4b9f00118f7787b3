package gallery

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 100
)

type ArtworkQuery struct {
	Page   int
	Limit  int
	Search string
}

// Normalize fills zero values with defaults and clamps Limit to MaxLimit.
func (q ArtworkQuery) Normalize() ArtworkQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	return q
}

func (q ArtworkQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}
