//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"book-courier/cmd/bootstrap"
	"book-courier/cmd/bootstrap/components"
	"book-courier/internal/infra/db"
	"book-courier/internal/pkg/config"
	"book-courier/internal/usecase/commands"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var (
	mongoContainerOnce sync.Once
	mongoTestContainer testcontainers.Container
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// ------------------------------------------------------------
// 各テストプロセス用にセットアップ
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, gateway commands.PaymentGateway) (*mongo.Database, *gin.Engine, config.Config) {
	mongoInfo := startContainers(t)

	cfg := createTestConfig(mongoInfo)

	database, router, app := buildE2EApp(cfg, gateway)
	require.NotNil(t, router, "Routerのセットアップに失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		// プロセス毎のデータベースを破棄
		if err := database.Drop(ctx); err != nil {
			zap.L().Warn("テストデータベースの削除に失敗しました", zap.String("database", cfg.Mongo.Database), zap.Error(err))
		}
		if err := app.Stop(ctx); err != nil {
			zap.L().Warn("fxアプリケーションの停止に失敗しました", zap.Error(err))
		}
	})

	zap.L().Info("E2E環境の準備が完了しました",
		zap.String("mongo_host", mongoInfo.Host),
		zap.String("mongo_port", mongoInfo.Port.Port()),
		zap.String("database", cfg.Mongo.Database))

	return database, router, cfg
}

// ------------------------------------------------------------
// コンテナ起動関数
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startMongoContainerOnce(t)

	mongoInfo, err := getContainerHostPort(mongoTestContainer, "27017/tcp")
	require.NoError(t, err, "MongoDBコンテナ情報の取得に失敗")

	return mongoInfo
}

func createTestConfig(mongoInfo ContainerInfo) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Mongo.URI = fmt.Sprintf("mongodb://%s:%s", mongoInfo.Host, mongoInfo.Port.Port())
	// プロセス毎に違うデータベース名を生成
	testConfig.Mongo.Database = "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")
	testConfig.Mongo.Timeout = 10 * time.Second
	return testConfig
}

// ------------------------------------------------------------
// E2Eテスト用アプリケーション構築関数
// Returns database, router and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(cfg config.Config, gateway commands.PaymentGateway) (*mongo.Database, *gin.Engine, *fx.App) {
	var (
		router   *gin.Engine
		database *mongo.Database
	)

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return cfg }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		bootstrap.IntegrationModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,

		// 決済プロセッサはテスト用の実装に差し替え
		fx.Decorate(func(commands.PaymentGateway) commands.PaymentGateway { return gateway }),

		fx.Populate(&router, &database),

		// ログを無効にして起動
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil || database == nil {
		panic("fxアプリケーションの起動に失敗しました")
	}

	return database, router, app
}

// ------------------------------------------------------------
// コンテナ起動の共通関数
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

// ------------------------------------------------------------
// MongoDBコンテナを一度だけ起動／再利用
// ------------------------------------------------------------
func startMongoContainerOnce(t *testing.T) {
	mongoContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			Tmpfs: map[string]string{
				"/data/db": "rw,size=512m", // データをRAMに載せてI/O削減
			},
			Cmd: []string{"--quiet"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Waiting for connections"),
				wait.ForListeningPort("27017/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		mongoTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "MongoDBコンテナの起動に失敗")

		t.Cleanup(func() {
			if mongoTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := mongoTestContainer.Terminate(ctx); err != nil {
					zap.L().Warn("MongoDBコンテナの終了に失敗しました", zap.Error(err))
				}
			}
		})
	})
}

// ------------------------------------------------------------
// コンテナ関連の共通ユーティリティ関数
// ------------------------------------------------------------
func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// E2Eテストスイートで共通のセットアップ
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router  *gin.Engine
	DB      *mongo.Database
	Config  config.Config
	Gateway *FakeGateway
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	s.Gateway = NewFakeGateway()
	database, router, cfg := setupE2EEnvironment(t, s.Gateway)
	s.DB = database
	s.Router = router
	s.Config = cfg
	require.NotNil(t, database, "DBのセットアップに失敗")
	require.NotEmpty(t, s.Config, "Configの取得に失敗")
	require.NotNil(t, s.Router, "Routerのセットアップに失敗")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	// インデックスを残したままドキュメントだけ削除
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for _, name := range []string{
		db.UsersCollection,
		db.BooksCollection,
		db.OrdersCollection,
		db.SellerRequestsCollection,
	} {
		_, err := s.DB.Collection(name).DeleteMany(ctx, bson.D{})
		require.NoError(s.T(), err, "Failed to reset collection %s", name)
	}
	s.Gateway.Reset()
}
