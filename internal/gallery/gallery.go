package gallery

import (
	"context"
	"errors"
	"time"
)

var ErrWalletRequired = errors.New("wallet address is required")

type User struct {
	ID            int64      `json:"id"`
	WalletAddress string     `json:"wallet_address"`
	Username      *string    `json:"username"`
	AvatarURL     *string    `json:"avatar_url"`
	Bio           *string    `json:"bio"`
	XHandle       *string    `json:"x_handle"`
	DiscordHandle *string    `json:"discord_handle"`
	CreatedAt     *time.Time `json:"created_at"`
}

type Artwork struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	DescriptionHTML string     `json:"description_html,omitempty"`
	FileType        *string    `json:"file_type"`
	IrysID          *string    `json:"irys_id"`
	FileURL         *string    `json:"file_url"`
	ThumbnailURL    *string    `json:"thumbnail_url"`
	FileSize        *int64     `json:"file_size"`
	MimeType        *string    `json:"mime_type"`
	CreatedAt       *time.Time `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
	Views           int64      `json:"views"`
	Likes           int64      `json:"likes"`
	ArtistName      *string    `json:"artist_name"`
	ArtistAvatar    *string    `json:"artist_avatar"`
}

// Store is the persistence the gallery API needs.
type Store interface {
	// ConnectWallet returns the user owning wallet, creating it if needed.
	// created reports whether a new row was inserted.
	ConnectWallet(ctx context.Context, wallet string) (user User, created bool, err error)
	ListArtworks(ctx context.Context, q ArtworkQuery) ([]Artwork, error)
	Ping(ctx context.Context) error
}
