package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

// RankCursor is a keyset position inside a ranking scan ordered by
// (group key asc, monthly xp desc, id asc). The scan continues strictly after it.
type RankCursor struct {
	Key string
	Xp  int64
	ID  uuid.UUID
}

// FirstRankCursor positions a scan before the first row.
func FirstRankCursor() RankCursor {
	return RankCursor{Xp: math.MaxInt64}
}

// GroupEnd positions a scan after the last row of the group key.
func GroupEnd(key string) RankCursor {
	return RankCursor{Key: key, Xp: 0}
}

type MonthlyResetRepository struct {
	conn PgConnection
}

func NewMonthlyResetRepo(conn PgConnection) *MonthlyResetRepository {
	return &MonthlyResetRepository{
		conn: conn,
	}
}

func rankingGroup(scope entity.Scope) (expr string, cond string, err error) {
	switch scope {
	case entity.ScopeWorld:
		return "''", "", nil
	case entity.ScopeCountry:
		return "LOWER(country)", " AND country <> ''", nil
	case entity.ScopeCity:
		return "LOWER(country) || '|' || LOWER(city)", " AND country <> '' AND city <> ''", nil
	}
	return "", "", errorvalues.ErrInvalidScope
}

// LastCompletedPeriod returns the latest month whose reset has completed, or nil if none has.
func (mr *MonthlyResetRepository) LastCompletedPeriod(ctx context.Context) (*time.Time, error) {
	row := mr.conn.QueryRow(ctx, `SELECT period FROM monthly_reset_runs WHERE completed_at IS NOT NULL ORDER BY period DESC LIMIT 1;`)
	var period time.Time
	if err := row.Scan(&period); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting last completed reset error: " + err.Error())
	}
	return &period, nil
}

// StartRun opens the run of period, or resumes it if a previous attempt did not complete.
// The first opening copies the ranking input into the period standings, and a resumed
// run keeps ranking that copy.
func (mr *MonthlyResetRepository) StartRun(ctx context.Context, period, at time.Time) error {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning reset run transaction error: " + err.Error())
	}
	row := tx.QueryRow(
		ctx,
		`INSERT INTO monthly_reset_runs (period, started_at) VALUES ($1, $2) ON CONFLICT (period) DO UPDATE SET started_at = EXCLUDED.started_at WHERE monthly_reset_runs.completed_at IS NULL RETURNING ranking_frozen;`,
		period,
		at,
	)
	var frozen bool
	if err = row.Scan(&frozen); err != nil {
		_ = tx.Rollback(ctx)
		if errors.Is(err, pgx.ErrNoRows) {
			return errorvalues.ErrResetAlreadyCompleted
		}
		return errors.New("starting reset run error: " + err.Error())
	}
	if !frozen {
		_, err = tx.Exec(ctx, `INSERT INTO monthly_reset_standings (period, user_id, monthly_xp, country, city) SELECT $1, id, monthly_xp, country, city FROM users WHERE monthly_xp > 0;`, period)
		if err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("freezing standings error: " + err.Error())
		}
		_, err = tx.Exec(ctx, `UPDATE monthly_reset_runs SET ranking_frozen = TRUE WHERE period = $1;`, period)
		if err != nil {
			_ = tx.Rollback(ctx)
			return errors.New("freezing standings error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing reset run error: " + err.Error())
	}
	return nil
}

// RankedPage returns up to limit standings of period after cursor, grouped for the scope.
func (mr *MonthlyResetRepository) RankedPage(ctx context.Context, period time.Time, scope entity.Scope, cursor RankCursor, limit int) ([]entity.RankedUser, error) {
	expr, cond, err := rankingGroup(scope)
	if err != nil {
		return nil, err
	}
	sql := fmt.Sprintf(
		`SELECT user_id, monthly_xp, country, city, %[1]s AS group_key FROM monthly_reset_standings WHERE period = $1%[2]s AND (%[1]s, -monthly_xp, user_id) > ($2::text, $3::bigint, $4::uuid) ORDER BY group_key ASC, monthly_xp DESC, user_id ASC LIMIT $5;`,
		expr, cond,
	)
	rows, err := mr.conn.Query(ctx, sql, period, cursor.Key, -cursor.Xp, cursor.ID, limit)
	if err != nil {
		return nil, errors.New("getting ranking page error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.RankedUser, 0, limit)
	for rows.Next() {
		var u entity.RankedUser
		if err = rows.Scan(&u.ID, &u.MonthlyXp, &u.Country, &u.City, &u.GroupKey); err != nil {
			return nil, errors.New("ranking row parsing error: " + err.Error())
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected ranking rows error: " + err.Error())
	}
	return result, nil
}

// GrantReward records the grant in the ledger and credits the user in one transaction.
// It reports false without paying when the period already holds a grant for the same
// (user, scope) or for the same rank of the same scope key.
func (mr *MonthlyResetRepository) GrantReward(ctx context.Context, grant entity.RewardGrant) (bool, error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return false, errors.New("beginning reward transaction error: " + err.Error())
	}
	ct, err := tx.Exec(
		ctx,
		`INSERT INTO monthly_rewards (period, user_id, scope, scope_key, rank, amount) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT DO NOTHING;`,
		grant.Period,
		grant.UserID,
		string(grant.Scope),
		grant.ScopeKey,
		grant.Rank,
		grant.Amount,
	)
	if err != nil {
		_ = tx.Rollback(ctx)
		return false, errors.New("recording reward error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return false, nil
	}
	ct, err = tx.Exec(ctx, `UPDATE users SET reward_balance = reward_balance + $1 WHERE id = $2;`, grant.Amount, grant.UserID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return false, errors.New("crediting reward error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return false, errorvalues.ErrUserNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return false, errors.New("committing reward error: " + err.Error())
	}
	return true, nil
}

// CloseRun zeroes every user's monthly xp and marks the period completed atomically.
// It returns the number of users whose monthly xp was reset.
func (mr *MonthlyResetRepository) CloseRun(ctx context.Context, period, at time.Time) (int64, error) {
	tx, err := mr.conn.Begin(ctx)
	if err != nil {
		return 0, errors.New("beginning close run transaction error: " + err.Error())
	}
	zeroed, err := tx.Exec(ctx, `UPDATE users SET monthly_xp = 0 WHERE monthly_xp <> 0;`)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, errors.New("zeroing monthly xp error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE monthly_reset_runs SET completed_at = $1 WHERE period = $2 AND completed_at IS NULL;`, at, period)
	if err != nil {
		_ = tx.Rollback(ctx)
		return 0, errors.New("completing reset run error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return 0, errorvalues.ErrResetAlreadyCompleted
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, errors.New("committing close run error: " + err.Error())
	}
	return zeroed.RowsAffected(), nil
}
