package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

// LeaderboardSize caps how many ranked entries a leaderboard returns.
const LeaderboardSize = 100

var leaderboardSentinels = map[string]error{
	"Scope":   errorvalues.ErrInvalidScope,
	"Period":  errorvalues.ErrInvalidPeriod,
	"Country": errorvalues.ErrInvalidPlace,
	"City":    errorvalues.ErrInvalidPlace,
}

type LeaderboardService struct {
	users       repository.UsersRepositoryI
	follows     repository.FollowsRepositoryI
	leaderboard repository.LeaderboardRepositoryI
}

func NewLeaderboardService(users repository.UsersRepositoryI, follows repository.FollowsRepositoryI, leaderboard repository.LeaderboardRepositoryI) *LeaderboardService {
	if users == nil || follows == nil || leaderboard == nil {
		log.Fatal("on leaderboard service provided nil repos")
	}
	return &LeaderboardService{
		users:       users,
		follows:     follows,
		leaderboard: leaderboard,
	}
}

func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, callerID uuid.UUID, req *LeaderboardRequest) (*entity.Leaderboard, error) {
	req.Country = strings.TrimSpace(req.Country)
	req.City = strings.TrimSpace(req.City)
	if err := validate.Struct(*req); err != nil {
		return nil, validationError(err, leaderboardSentinels)
	}
	scope := entity.Scope(req.Scope)
	if scope == "" {
		scope = entity.ScopeWorld
	}
	period := entity.Period(req.Period)
	if period == "" {
		period = entity.PeriodMonthly
	}
	caller, err := ls.users.FindByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	filter, err := ls.resolveScope(ctx, caller, scope, req)
	if err != nil {
		return nil, err
	}
	query := repository.LeaderboardQuery{
		Period: period,
		Filter: filter,
		Limit:  LeaderboardSize,
	}
	entries, err := ls.leaderboard.Top(ctx, query)
	if err != nil {
		return nil, errors.New("leaderboard repository error: " + err.Error())
	}
	score := caller.MonthlyXp
	if period == entity.PeriodAllTime {
		score = caller.TotalXp
	}
	var rank *int
	if score > 0 {
		above, err := ls.leaderboard.CountAbove(ctx, query, score)
		if err != nil {
			return nil, errors.New("leaderboard repository error: " + err.Error())
		}
		r := int(above) + 1
		rank = &r
	}
	return &entity.Leaderboard{
		Scope:   scope,
		Period:  period,
		Filter:  filter,
		Entries: entries,
		Caller: entity.LeaderboardCaller{
			UserID:  caller.ID,
			Name:    caller.Name,
			Score:   score,
			Rank:    rank,
			Level:   caller.Level,
			Title:   caller.CurrentTitle,
			Country: caller.Country,
			City:    caller.City,
		},
	}, nil
}

// resolveScope turns the scope into a population filter. Request overrides win over the
// caller's profile; a scope whose place cannot be resolved fails instead of widening to world.
func (ls *LeaderboardService) resolveScope(ctx context.Context, caller *entity.UserProgression, scope entity.Scope, req *LeaderboardRequest) (entity.ScopeFilter, error) {
	country := firstNonEmpty(req.Country, caller.Country)
	city := firstNonEmpty(req.City, caller.City)
	switch scope {
	case entity.ScopeWorld:
		return entity.ScopeFilter{}, nil
	case entity.ScopeCountry:
		if country == "" {
			return entity.ScopeFilter{}, errorvalues.ErrScopeCountryRequired
		}
		return entity.ScopeFilter{Country: country}, nil
	case entity.ScopeCity:
		if country == "" || city == "" {
			return entity.ScopeFilter{}, errorvalues.ErrScopeCityRequired
		}
		return entity.ScopeFilter{Country: country, City: city}, nil
	case entity.ScopeFriends:
		following, err := ls.follows.Following(ctx, caller.ID)
		if err != nil {
			return entity.ScopeFilter{}, errors.New("follows repository error: " + err.Error())
		}
		return friendsFilter(caller.ID, following), nil
	}
	return entity.ScopeFilter{}, errorvalues.ErrInvalidScope
}

func friendsFilter(caller uuid.UUID, following []uuid.UUID) entity.ScopeFilter {
	ids := make([]uuid.UUID, 0, len(following)+1)
	ids = append(ids, caller)
	for _, id := range following {
		if id != caller {
			ids = append(ids, id)
		}
	}
	return entity.ScopeFilter{UserIDs: ids}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
