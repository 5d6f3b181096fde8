package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/schoolhub/portal/internal/api"
	"github.com/schoolhub/portal/internal/config"
	"github.com/schoolhub/portal/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}
	defer func() { _ = zap.L().Sync() }()

	rdb, err := openRedis(conf.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis -> %w", err)
	}
	if rdb != nil {
		defer rdb.Close()
	}

	s, err := api.NewServer(conf, rdb)
	if err != nil {
		return fmt.Errorf("failed to initialize server -> %w", err)
	}

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openRedis(conf *config.RedisConfig) (*redis.Client, error) {
	if conf.Addr == "" {
		zap.L().Info("redis not configured, using in-process cache")

		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("rdb.Ping -> %w", err)
	}

	return rdb, nil
}
