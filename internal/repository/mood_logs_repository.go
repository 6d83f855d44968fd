package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/limbo/levelup/pkg/entity"
)

type MoodLogsRepository struct {
	conn PgConnection
}

func NewMoodLogsRepo(conn PgConnection) *MoodLogsRepository {
	return &MoodLogsRepository{
		conn: conn,
	}
}

func (mr *MoodLogsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.MoodLogEvent, error) {
	rows, err := mr.conn.Query(ctx, `SELECT user_id, created_at FROM mood_logs WHERE user_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting mood logs error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.MoodLogEvent, 0, 8)
	for rows.Next() {
		var m entity.MoodLogEvent
		if err = rows.Scan(&m.UserID, &m.CreatedAt); err != nil {
			return nil, errors.New("mood log row parsing error: " + err.Error())
		}
		result = append(result, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mood log rows error: " + err.Error())
	}
	return result, nil
}
