package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/pkg/entity"
)

type LeaderboardQuery struct {
	Period entity.Period
	Filter entity.ScopeFilter
	Limit  int
}

type LeaderboardRepository struct {
	conn PgConnection
}

func NewLeaderboardRepo(conn PgConnection) *LeaderboardRepository {
	return &LeaderboardRepository{
		conn: conn,
	}
}

func scoreColumn(period entity.Period) (string, error) {
	switch period {
	case entity.PeriodMonthly:
		return "monthly_xp", nil
	case entity.PeriodAllTime:
		return "total_xp", nil
	}
	return "", errorvalues.ErrInvalidPeriod
}

// scopeConditions renders the filter as AND clauses numbered after the args already collected.
func scopeConditions(f entity.ScopeFilter, args []any) (string, []any) {
	var sb strings.Builder
	if f.Country != "" {
		args = append(args, f.Country)
		fmt.Fprintf(&sb, " AND LOWER(country) = LOWER($%d)", len(args))
	}
	if f.City != "" {
		args = append(args, f.City)
		fmt.Fprintf(&sb, " AND LOWER(city) = LOWER($%d)", len(args))
	}
	if f.UserIDs != nil {
		ids := make([]string, 0, len(f.UserIDs))
		for _, id := range f.UserIDs {
			ids = append(ids, id.String())
		}
		args = append(args, ids)
		fmt.Fprintf(&sb, " AND id = ANY($%d::uuid[])", len(args))
	}
	return sb.String(), args
}

// Top returns the highest scored users of the query scope, ranked 1..n by (score desc, id asc).
// Users with a zero score are not ranked.
func (lr *LeaderboardRepository) Top(ctx context.Context, q LeaderboardQuery) ([]entity.LeaderboardEntry, error) {
	col, err := scoreColumn(q.Period)
	if err != nil {
		return nil, err
	}
	conds, args := scopeConditions(q.Filter, nil)
	args = append(args, q.Limit)
	sql := fmt.Sprintf(
		`SELECT id, name, country, city, %[1]s, level, current_title FROM users WHERE %[1]s > 0%[2]s ORDER BY %[1]s DESC, id ASC LIMIT $%[3]d;`,
		col, conds, len(args),
	)
	rows, err := lr.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LeaderboardEntry, 0, q.Limit)
	for rows.Next() {
		var e entity.LeaderboardEntry
		err = rows.Scan(&e.UserID, &e.Name, &e.Country, &e.City, &e.Score, &e.Level, &e.Title)
		if err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		e.Rank = len(result) + 1
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return result, nil
}

// CountAbove counts users of the query scope whose score is strictly greater than score.
func (lr *LeaderboardRepository) CountAbove(ctx context.Context, q LeaderboardQuery, score int64) (int64, error) {
	col, err := scoreColumn(q.Period)
	if err != nil {
		return 0, err
	}
	conds, args := scopeConditions(q.Filter, []any{score})
	sql := fmt.Sprintf(`SELECT COUNT(*) FROM users WHERE %s > $1%s;`, col, conds)
	var count int64
	if err = lr.conn.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.New("counting users above score error: " + err.Error())
	}
	return count, nil
}
