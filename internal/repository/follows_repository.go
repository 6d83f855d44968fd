package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type FollowsRepository struct {
	conn PgConnection
}

func NewFollowsRepo(conn PgConnection) *FollowsRepository {
	return &FollowsRepository{
		conn: conn,
	}
}

// Following lists ids of the users uid follows.
func (fr *FollowsRepository) Following(ctx context.Context, uid uuid.UUID) ([]uuid.UUID, error) {
	rows, err := fr.conn.Query(ctx, `SELECT followee_id FROM follows WHERE follower_id = $1;`, uid)
	if err != nil {
		return nil, errors.New("getting following list error: " + err.Error())
	}
	defer rows.Close()
	result := make([]uuid.UUID, 0, 8)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("follow row parsing error: " + err.Error())
		}
		result = append(result, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected follow rows error: " + err.Error())
	}
	return result, nil
}
