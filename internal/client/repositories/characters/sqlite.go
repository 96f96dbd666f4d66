package characters

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

func (r *SQLiteRepository) ReplaceRoom(ctx context.Context, roomID string, list []models.CharacterCard) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM characters WHERE room_id = ?`, roomID); err != nil {
			return fmt.Errorf("failed to clear character cache: %w", err)
		}
		query := `INSERT INTO characters
			(id, room_id, user_id, name, race, class, level, background, alignment,
			 strength, dexterity, constitution, intelligence, wisdom, charisma,
			 ac, hp, max_hp, speed, proficiency,
			 skills, saves, equipment, spells, created_at, updated_at, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		for i, c := range list {
			_, err := tx.ExecContext(ctx, query,
				c.ID, roomID, c.UserID, c.Name, c.Race, c.Class, c.Level, c.Background, c.Alignment,
				c.Strength, c.Dexterity, c.Constitution, c.Intelligence, c.Wisdom, c.Charisma,
				c.AC, c.HP, c.MaxHP, c.Speed, c.Proficiency,
				c.Skills, c.Saves, c.Equipment, c.Spells,
				c.CreatedAt.Format(time.RFC3339Nano), c.UpdatedAt.Format(time.RFC3339Nano),
				i,
			)
			if err != nil {
				return fmt.Errorf("failed to cache character %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetByRoom(ctx context.Context, roomID string) ([]models.CharacterCard, error) {
	query := `SELECT id, room_id, user_id, name, race, class, level, background, alignment,
			 strength, dexterity, constitution, intelligence, wisdom, charisma,
			 ac, hp, max_hp, speed, proficiency,
			 skills, saves, equipment, spells, created_at, updated_at
		FROM characters WHERE room_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to select cached characters: %w", err)
	}
	defer rows.Close()

	var result []models.CharacterCard
	for rows.Next() {
		var item models.CharacterCard
		var createdAt, updatedAt string
		if err := rows.Scan(&item.ID, &item.RoomID, &item.UserID, &item.Name, &item.Race, &item.Class,
			&item.Level, &item.Background, &item.Alignment,
			&item.Strength, &item.Dexterity, &item.Constitution, &item.Intelligence, &item.Wisdom, &item.Charisma,
			&item.AC, &item.HP, &item.MaxHP, &item.Speed, &item.Proficiency,
			&item.Skills, &item.Saves, &item.Equipment, &item.Spells,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}
		item.CreatedAt = parseTime(createdAt)
		item.UpdatedAt = parseTime(updatedAt)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
