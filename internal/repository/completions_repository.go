package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/levelup/pkg/entity"
)

// CompletionsRepository reads habit completion evidence. Rows are written by the habit tracker.
type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(conn PgConnection) *CompletionsRepository {
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) VerifiedByUser(ctx context.Context, uid uuid.UUID) ([]entity.CompletionEvent, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT c.id, c.user_id, c.habit_id, h.title, c.verified, c.verified_at, c.created_at FROM habit_completions c JOIN habits h ON h.id = c.habit_id WHERE c.user_id = $1 AND c.verified;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("getting verified completions error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.CompletionEvent, 0, 8)
	for rows.Next() {
		var c entity.CompletionEvent
		err = rows.Scan(&c.ID, &c.UserID, &c.HabitID, &c.HabitName, &c.Verified, &c.VerifiedAt, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}

// HasVerifiedBetween inspects if the user has a verified completion created in [from, to).
func (cr *CompletionsRepository) HasVerifiedBetween(ctx context.Context, uid uuid.UUID, from, to time.Time) (bool, error) {
	var exists bool
	row := cr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM habit_completions WHERE user_id = $1 AND verified AND created_at >= $2 AND created_at < $3);`,
		uid,
		from,
		to,
	)
	if err := row.Scan(&exists); err != nil {
		return false, errors.New("inspecting verified completions error: " + err.Error())
	}
	return exists, nil
}
