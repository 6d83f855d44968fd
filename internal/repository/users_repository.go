package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	return &UsersRepository{
		conn: conn,
	}
}

// Create inserts a profile with zeroed progression and returns its id.
func (ur *UsersRepository) Create(ctx context.Context, user *entity.UserProgression) (uuid.UUID, error) {
	if user == nil {
		return uuid.Nil, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (name, country, city) VALUES ($1, $2, $3) RETURNING id;`,
		user.Name,
		user.Country,
		user.City,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.Nil, errorvalues.ErrUserExists
			}
		}
		return uuid.Nil, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.UserProgression, error) {
	var user entity.UserProgression
	row := ur.conn.QueryRow(ctx, `SELECT id, name, country, city, total_xp, monthly_xp, level, current_title, streak_count, streak_last_updated, streak_version, reward_balance FROM users WHERE id = $1;`, uid)
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Country,
		&user.City,
		&user.TotalXp,
		&user.MonthlyXp,
		&user.Level,
		&user.CurrentTitle,
		&user.Streak.Count,
		&user.Streak.LastUpdated,
		&user.StreakVersion,
		&user.RewardBalance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	return &user, nil
}

// ListIDs pages through user ids in ascending order, starting after the given id.
func (ur *UsersRepository) ListIDs(ctx context.Context, after uuid.UUID, limit int) ([]uuid.UUID, error) {
	rows, err := ur.conn.Query(ctx, `SELECT id FROM users WHERE id > $1 ORDER BY id LIMIT $2;`, after, limit)
	if err != nil {
		return nil, errors.New("listing user ids error: " + err.Error())
	}
	defer rows.Close()
	result := make([]uuid.UUID, 0, limit)
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("user id row parsing error: " + err.Error())
		}
		result = append(result, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected user id rows error: " + err.Error())
	}
	return result, nil
}

func (ur *UsersRepository) UpdateTotals(ctx context.Context, uid uuid.UUID, totals entity.XpTotals, level int, title string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET total_xp = $1, monthly_xp = $2, level = $3, current_title = $4 WHERE id = $5;`,
		totals.TotalXp,
		totals.MonthlyXp,
		level,
		title,
		uid,
	)
	if err != nil {
		return errors.New("updating user totals error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

// CompareAndSwapStreak stores the streak only if streak_version still equals version.
// It reports false when another writer got there first.
func (ur *UsersRepository) CompareAndSwapStreak(ctx context.Context, uid uuid.UUID, version int64, streak entity.Streak) (bool, error) {
	var lastUpdated *time.Time
	if streak.LastUpdated != nil {
		t := streak.LastUpdated.UTC()
		lastUpdated = &t
	}
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET streak_count = $1, streak_last_updated = $2, streak_version = streak_version + 1 WHERE id = $3 AND streak_version = $4;`,
		streak.Count,
		lastUpdated,
		uid,
		version,
	)
	if err != nil {
		return false, errors.New("updating user streak error: " + err.Error())
	}
	return ct.RowsAffected() == 1, nil
}
