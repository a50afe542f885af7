package repo

import (
	"context"

	dom "github.com/LudyPitra/AI-Diary-App/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EntryRepo provides diary entry persistence. The surface is append-only:
// no update, no delete.
type EntryRepo interface {
	Create(ctx context.Context, e dom.Entry) (dom.Entry, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]dom.Entry, error)
}

type PGEntryRepo struct {
	db *pgxpool.Pool
}

func NewPGEntryRepo(db *pgxpool.Pool) *PGEntryRepo {
	return &PGEntryRepo{db: db}
}

func (r *PGEntryRepo) Create(ctx context.Context, e dom.Entry) (dom.Entry, error) {
	query := `
		INSERT INTO entries (title, content, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, title, content, created_at, owner_id`
	var out dom.Entry
	err := r.db.QueryRow(ctx, query, e.Title, e.Content, e.OwnerID).Scan(
		&out.ID, &out.Title, &out.Content, &out.CreatedAt, &out.OwnerID,
	)
	return out, err
}

func (r *PGEntryRepo) ListByOwner(ctx context.Context, ownerID int64) ([]dom.Entry, error) {
	query := `
		SELECT id, title, content, created_at, owner_id
		FROM entries WHERE owner_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Entry
	for rows.Next() {
		var e dom.Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Content, &e.CreatedAt, &e.OwnerID); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}
