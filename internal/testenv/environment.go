// Package testenv starts the Postgres and Redis instances integration tests
// run against. With USE_LOCAL_ENV=true it uses already running instances
// instead of containers.
package testenv

import (
	"context"
	"fmt"
	"github.com/docker/go-connections/nat"
	"github.com/jmoiron/sqlx"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"testing"
	"time"

	_ "github.com/lib/pq"
)

type TestConfig struct {
	UseLocalEnv bool   `envconfig:"USE_LOCAL_ENV"`
	PostgresURL string `envconfig:"TEST_POSTGRES_URL"`
	RedisAddr   string `envconfig:"TEST_REDIS_ADDR"`
}

func LoadTestConfig(t *testing.T) TestConfig {
	var cfg TestConfig
	require.NoError(t, envconfig.Process("", &cfg))
	return cfg
}

type TestEnvironment struct {
	Config TestConfig

	PostgresURL string
	DB          *sqlx.DB

	RedisAddr   string
	RedisClient *redis.Client
}

// New skips the calling test in short mode. Containers are terminated when
// the test finishes.
func New(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	env := &TestEnvironment{Config: LoadTestConfig(t)}

	env.setupPostgres(t)
	env.setupRedis(t)

	return env
}

func (env *TestEnvironment) setupPostgres(t *testing.T) {
	ctx := context.Background()

	if env.Config.UseLocalEnv {
		require.NotEmpty(t, env.Config.PostgresURL, "TEST_POSTGRES_URL is required when USE_LOCAL_ENV=true")
		env.PostgresURL = env.Config.PostgresURL
	} else {
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:16-alpine",
				ExposedPorts: []string{"5432/tcp"},
				Env: map[string]string{
					"POSTGRES_USER":     "user",
					"POSTGRES_PASSWORD": "password",
					"POSTGRES_DB":       "db",
				},
				// postgres restarts once after running init scripts
				WaitingFor: wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(time.Minute),
			},
			Started: true,
		})
		require.NoError(t, err, "Failed to start Postgres container")
		t.Cleanup(func() {
			require.NoError(t, container.Terminate(ctx))
		})

		host, port := hostPort(t, container, "5432/tcp")
		env.PostgresURL = fmt.Sprintf("postgres://user:password@%s:%s/db?sslmode=disable", host, port)
	}

	db, err := sqlx.Open("postgres", env.PostgresURL)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	require.EventuallyWithT(t, func(collect *assert.CollectT) {
		assert.NoError(collect, db.PingContext(ctx))
	}, 10*time.Second, 100*time.Millisecond, "Postgres is not reachable")

	env.DB = db
}

func (env *TestEnvironment) setupRedis(t *testing.T) {
	ctx := context.Background()

	if env.Config.UseLocalEnv {
		require.NotEmpty(t, env.Config.RedisAddr, "TEST_REDIS_ADDR is required when USE_LOCAL_ENV=true")
		env.RedisAddr = env.Config.RedisAddr
	} else {
		container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "redis:7-alpine",
				ExposedPorts: []string{"6379/tcp"},
				WaitingFor:   wait.ForLog("Ready to accept connections"),
			},
			Started: true,
		})
		require.NoError(t, err, "Failed to start Redis container")
		t.Cleanup(func() {
			require.NoError(t, container.Terminate(ctx))
		})

		host, port := hostPort(t, container, "6379/tcp")
		env.RedisAddr = host + ":" + port
	}

	env.RedisClient = redis.NewClient(&redis.Options{Addr: env.RedisAddr})
	t.Cleanup(func() {
		_ = env.RedisClient.Close()
	})

	require.NoError(t, env.RedisClient.Ping(ctx).Err(), "Failed to connect to Redis")
}

func hostPort(t *testing.T, container testcontainers.Container, port nat.Port) (string, string) {
	ctx := context.Background()

	host, err := container.Host(ctx)
	require.NoError(t, err)

	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	return host, mapped.Port()
}
