//go:build e2e

package lock_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"book-courier/internal/infra/lock"
	"book-courier/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const lockKey = "checkout:confirm:cs_test_lock"

type RedisLockerSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
}

func TestRedisLockerSuite(t *testing.T) {
	suite.Run(t, new(RedisLockerSuite))
}

func (s *RedisLockerSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort("6379/tcp"),
			).WithDeadline(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		},
		Started: true,
	})
	s.Require().NoError(err, "Redisコンテナの起動に失敗")
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	s.Require().NoError(err)

	s.client = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	s.Require().NoError(s.client.Ping(ctx).Err())
}

func (s *RedisLockerSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(ctx)
	}
}

func (s *RedisLockerSuite) SetupSubTest() {
	s.Require().NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisLockerSuite) TestAcquire() {
	s.Run("正常系: 保持中は二重取得できず解放後は取得できる", func() {
		ctx := context.Background()
		locker := lock.NewRedisLocker(s.client, 10*time.Second, zap.NewNop())

		release, err := locker.Acquire(ctx, lockKey)
		s.Require().NoError(err)

		_, err = locker.Acquire(ctx, lockKey)
		s.Require().ErrorIs(err, commands.ErrLockHeld)

		release(ctx)

		again, err := locker.Acquire(ctx, lockKey)
		s.Require().NoError(err)
		again(ctx)
	})

	s.Run("正常系: TTL経過後は再取得できる", func() {
		ctx := context.Background()
		ttl := 300 * time.Millisecond
		locker := lock.NewRedisLocker(s.client, ttl, zap.NewNop())

		_, err := locker.Acquire(ctx, lockKey)
		s.Require().NoError(err)

		pttl, err := s.client.PTTL(ctx, lockKey).Result()
		s.Require().NoError(err)
		s.Greater(pttl, time.Duration(0))
		s.LessOrEqual(pttl, ttl)

		s.Require().Eventually(func() bool {
			release, err := locker.Acquire(ctx, lockKey)
			if err != nil {
				return false
			}
			release(ctx)
			return true
		}, 5*time.Second, 50*time.Millisecond)
	})

	s.Run("異常系: 期限切れの保持者の解放は新しい保持者の鍵を消さない", func() {
		ctx := context.Background()
		short := lock.NewRedisLocker(s.client, 200*time.Millisecond, zap.NewNop())
		long := lock.NewRedisLocker(s.client, 10*time.Second, zap.NewNop())

		staleRelease, err := short.Acquire(ctx, lockKey)
		s.Require().NoError(err)

		var currentRelease func(context.Context)
		s.Require().Eventually(func() bool {
			release, err := long.Acquire(ctx, lockKey)
			if err != nil {
				return false
			}
			currentRelease = release
			return true
		}, 5*time.Second, 50*time.Millisecond)

		held, err := s.client.Get(ctx, lockKey).Result()
		s.Require().NoError(err)

		staleRelease(ctx)

		after, err := s.client.Get(ctx, lockKey).Result()
		s.Require().NoError(err)
		s.Equal(held, after)

		_, err = long.Acquire(ctx, lockKey)
		s.Require().ErrorIs(err, commands.ErrLockHeld)

		currentRelease(ctx)
		s.Require().ErrorIs(s.client.Get(ctx, lockKey).Err(), redis.Nil)
	})
}

func TestNopLocker(t *testing.T) {
	ctx := context.Background()
	var locker lock.NopLocker

	first, err := locker.Acquire(ctx, lockKey)
	require.NoError(t, err)
	second, err := locker.Acquire(ctx, lockKey)
	require.NoError(t, err)
	first(ctx)
	second(ctx)
}
