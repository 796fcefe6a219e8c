//go:build e2e

package e2e

import (
	"context"
	"testing"
	"time"

	"travel-booking/cmd/bootstrap"
	"travel-booking/cmd/bootstrap/components"
	"travel-booking/internal/infra/db"
	"travel-booking/internal/pkg/config"
	"travel-booking/migrations"
	"travel-booking/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// SharedSuite は全E2Eスイートの土台。スイート毎に独立したDBとルーターを持つ
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	cfg := config.NewTestConfig()
	cfg.DB = createDatabase(t, postgresEndpoint(t))

	pool, closePool, err := db.Connect(context.Background(), cfg.DB)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, migrations.Apply(ctx, pool), "マイグレーションに失敗")

	s.DB = pool
	s.Config = cfg
	s.Router = startApp(t, pool, cfg)
}

// SetupSubTest は各サブテストを空のテーブルから始める
func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "DBのリセットに失敗")
}

// startApp は本番と同じfxモジュールでルーターを組み立てる。
// DBと設定だけ差し替え、スケジューラーは起動しない
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()
	var router *gin.Engine

	app := fx.New(
		fx.Supply(pool, cfg, cfg.Booking, cfg.Sweep),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.RedisModule,
		bootstrap.BrokerModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = app.Stop(ctx)
	})

	require.NotNil(t, router, "Routerのセットアップに失敗")
	return router
}
