//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"travel-booking/internal/pkg/config"

	"github.com/docker/go-connections/nat"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = "5432/tcp"
)

// テストプロセス全体で一つのPostgreSQLコンテナを共有し、スイート毎にDBを作る
var (
	pgOnce      sync.Once
	pgContainer testcontainers.Container
	pgErr       error
)

type endpoint struct {
	host string
	port nat.Port
}

func (e endpoint) dsn(dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port.Port(), dbName)
}

func postgresEndpoint(t *testing.T) endpoint {
	t.Helper()
	pgOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()
		pgContainer, pgErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: postgresRequest(),
			Started:          true,
		})
	})
	require.NoError(t, pgErr, "PostgreSQLコンテナの起動に失敗")

	ctx := t.Context()
	port, err := pgContainer.MappedPort(ctx, pgPort)
	require.NoError(t, err, "ポートの取得に失敗")
	host, err := pgContainer.Host(ctx)
	require.NoError(t, err, "ホストの取得に失敗")
	return endpoint{host: host, port: port}
}

func postgresRequest() testcontainers.ContainerRequest {
	return testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{pgPort},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// データはRAM上、耐久性は不要
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "shared_buffers=256MB",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
			return endpoint{host: host, port: port}.dsn("postgres")
		}).WithStartupTimeout(time.Minute),
		Labels: map[string]string{"purpose": "travel-booking-e2e"},
	}
}

// createDatabase はスイート専用のDBを作り、終了時に削除する
func createDatabase(t *testing.T, ep endpoint) config.DBConfig {
	t.Helper()
	name := "booking_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := ep.dsn("postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// 並列スイートが同時にCREATE DATABASEするとテンプレートDBの競合で失敗することがある
	backoff := 300 * time.Millisecond
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		slog.Warn("データベース作成を再試行します", "attempt", attempt, "error", err.Error())
		time.Sleep(backoff)
		backoff = min(backoff*2, 3*time.Second)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		pool, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("削除用の接続に失敗しました", "database", name, "error", err.Error())
			return
		}
		defer pool.Close()
		if _, err := pool.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗しました", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     ep.host,
		Port:     ep.port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
	}
}
