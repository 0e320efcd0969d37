package repository_test

import (
	"context"
	"github.com/deepak-5656/wanderease/internal/repository"
	"github.com/deepak-5656/wanderease/internal/testenv"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"testing"
)

func startPostgres(t *testing.T) (*sqlx.DB, *gorm.DB) {
	env := testenv.New(t)

	gormDB, err := repository.NewGormDB(env.DB.DB)
	require.NoError(t, err)

	require.NoError(t, repository.InitializeDBSchema(context.Background(), env.DB, gormDB))

	return env.DB, gormDB
}

func startRedis(t *testing.T) *redis.Client {
	return testenv.New(t).RedisClient
}
