package gallery

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"strings"
	"time"
)

//go:embed schema.sql
var schema string

const userColumns = `id, wallet_address, username, avatar_url, bio, x_handle, discord_handle, created_at`

type Postgres struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	cfg.MaxConns = 25
	cfg.MaxConnLifetime = 5 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() {
	p.pool.Close()
}

func (p *Postgres) ConnectWallet(ctx context.Context, wallet string) (User, bool, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return User{}, false, ErrWalletRequired
	}
	u, err := scanUser(p.pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE wallet_address = $1`, wallet))
	if err == nil {
		return u, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return User{}, false, fmt.Errorf("failed to find user: %w", err)
	}
	// A concurrent connect may insert the same wallet first; the no-op
	// update makes RETURNING yield that row, and xmax is non-zero for it.
	var inserted bool
	err = p.pool.QueryRow(ctx,
		`INSERT INTO users (wallet_address) VALUES ($1)
		ON CONFLICT (wallet_address) DO UPDATE SET wallet_address = EXCLUDED.wallet_address
		RETURNING `+userColumns+`, (xmax = 0) AS inserted`, wallet).Scan(append(u.fields(), &inserted)...)
	if err != nil {
		return User{}, false, fmt.Errorf("failed to create user: %w", err)
	}
	return u, inserted, nil
}

func (p *Postgres) ListArtworks(ctx context.Context, q ArtworkQuery) ([]Artwork, error) {
	sql, args := artworksQuery(q.Normalize())
	rows, err := p.pool.Query(ctx, sql, args)
	if err != nil {
		return nil, fmt.Errorf("failed to query artworks: %w", err)
	}
	artworks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Artwork, error) {
		var a Artwork
		err := row.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Description, &a.FileType, &a.IrysID,
			&a.FileURL, &a.ThumbnailURL, &a.FileSize, &a.MimeType,
			&a.CreatedAt, &a.UpdatedAt, &a.Views, &a.Likes,
			&a.ArtistName, &a.ArtistAvatar,
		)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan artworks: %w", err)
	}
	return artworks, nil
}

func artworksQuery(q ArtworkQuery) (string, pgx.NamedArgs) {
	var b strings.Builder
	b.WriteString(`SELECT a.id, a.user_id, a.title, a.description, a.file_type, a.irys_id,
	a.file_url, a.thumbnail_url, a.file_size, a.mime_type,
	a.created_at, a.updated_at, a.views, a.likes,
	u.username, u.avatar_url
FROM artworks a
JOIN users u ON a.user_id = u.id`)
	args := pgx.NamedArgs{
		"limit":  q.Limit,
		"offset": q.Offset(),
	}
	if q.Search != "" {
		b.WriteString("\nWHERE a.title ILIKE @search OR a.description ILIKE @search")
		args["search"] = "%" + q.Search + "%"
	}
	b.WriteString("\nORDER BY a.created_at DESC LIMIT @limit OFFSET @offset")
	return b.String(), args
}

func (u *User) fields() []any {
	return []any{
		&u.ID, &u.WalletAddress, &u.Username, &u.AvatarURL,
		&u.Bio, &u.XHandle, &u.DiscordHandle, &u.CreatedAt,
	}
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(u.fields()...)
	return u, err
}
