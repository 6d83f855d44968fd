package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/levelup/pkg/cleanup"
)

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// NewPool opens a pgx pool shared by all repositories and registers its closing as a cleanup job.
func NewPool(ctx context.Context, cfg DBConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.ConnString())
	if err != nil {
		return nil, errors.New("creating pgxpool error: " + err.Error())
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.New("pinging pgxpool error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool, nil
}
