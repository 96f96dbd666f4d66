package rooms

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
	"github.com/dmitrijs2005/tablekeeper/internal/dbx"
)

// SQLiteRepository implements Repository on the local cache database.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// ReplaceAll rewrites the cached list inside one transaction so readers never
// observe a half-replaced cache.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, list []models.Room) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM rooms`); err != nil {
			return fmt.Errorf("failed to clear room cache: %w", err)
		}
		query := `INSERT INTO rooms
			(id, name, description, rule_system, invite_code, dm_id, max_players, is_public, created_at, updated_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, room := range list {
			_, err := tx.ExecContext(ctx, query,
				room.ID, room.Name, room.Description, room.RuleSystem,
				room.InviteCode, room.DMID, room.MaxPlayers, boolToInt(room.IsPublic),
				room.CreatedAt.Format(time.RFC3339Nano),
				room.UpdatedAt.Format(time.RFC3339Nano),
				i,
			)
			if err != nil {
				return fmt.Errorf("failed to cache room %s: %w", room.ID, err)
			}
		}
		return nil
	})
}

// GetAll lists the cached rooms in stored order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	query := `SELECT id, name, description, rule_system, invite_code, dm_id, max_players, is_public, created_at, updated_at
		FROM rooms ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached rooms: %w", err)
	}
	defer rows.Close()

	var result []models.Room
	for rows.Next() {
		var item models.Room
		var isPublic int
		var createdAt, updatedAt string
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.RuleSystem,
			&item.InviteCode, &item.DMID, &item.MaxPlayers, &isPublic,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		item.IsPublic = isPublic != 0
		item.CreatedAt = parseTime(createdAt)
		item.UpdatedAt = parseTime(updatedAt)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// parseTime tolerates bad cached timestamps: the cache is display-only, a
// zero time beats an error.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
