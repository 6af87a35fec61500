package redis

import (
	"context"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisProvider wraps the go-redis client used as the board read cache.
type RedisProvider struct {
	Client      *redis.Client
	URL         string
	logger      *zap.SugaredLogger
	ttl         time.Duration
	stopMonitor context.CancelFunc
}

func NewRedisProvider(redisURL string, logger *zap.Logger, ttl time.Duration) *RedisProvider {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	opts.MaxRetries = 3
	opts.MinRetryBackoff = 100 * time.Millisecond
	opts.MaxRetryBackoff = 500 * time.Millisecond

	client := redis.NewClient(opts)

	monitorCtx, cancel := context.WithCancel(context.Background())
	provider := &RedisProvider{
		Client:      client,
		URL:         redisURL,
		logger:      logger.Sugar(),
		ttl:         ttl,
		stopMonitor: cancel,
	}
	client.AddHook(&loggerHook{logger: provider.logger})

	if err := client.Ping(context.Background()).Err(); err != nil {
		provider.logger.Errorw("Redis unreachable, board cache will miss until it recovers", "url", redisURL, "error", err)
	} else {
		provider.logger.Infow("Redis connected",
			"url", redisURL,
			"db", opts.DB,
			"default_ttl", ttl.String(),
		)
	}

	go provider.monitor(monitorCtx, 5*time.Second)

	return provider
}

// SetWithDefaultTTL stores value under key; a ttl <= 0 falls back to the
// provider's configured TTL.
func (r *RedisProvider) SetWithDefaultTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	if ttl <= 0 {
		ttl = r.ttl
	}
	return r.Client.Set(ctx, key, value, ttl)
}

func (r *RedisProvider) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.Client.Get(ctx, key)
}

func (r *RedisProvider) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.Client.Del(ctx, keys...)
}

func (r *RedisProvider) Incr(ctx context.Context, key string) *redis.IntCmd {
	return r.Client.Incr(ctx, key)
}

func (r *RedisProvider) Close() error {
	r.stopMonitor()
	return r.Client.Close()
}

// monitor logs connectivity transitions only, not every successful ping.
func (r *RedisProvider) monitor(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	up := r.Client.Ping(ctx).Err() == nil

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := r.Client.Ping(ctx).Err()
			switch {
			case err != nil && up:
				r.logger.Errorw("Redis disconnected", "error", err)
				up = false
			case err == nil && !up:
				r.logger.Infow("Redis reconnected", "url", r.URL)
				up = true
			}
		}
	}
}

type loggerHook struct {
	logger *zap.SugaredLogger
}

func (h *loggerHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := next(ctx, network, addr)
		if err != nil {
			h.logger.Errorw("Redis dial failed", "addr", addr, "error", err)
		}
		return conn, err
	}
}

func (h *loggerHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmd)
		h.log(cmd, time.Since(start), err)
		return err
	}
}

func (h *loggerHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		start := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(start)
		for _, cmd := range cmds {
			h.log(cmd, elapsed, err)
		}
		return err
	}
}

func (h *loggerHook) log(cmd redis.Cmder, elapsed time.Duration, err error) {
	if cmd.Name() == "ping" && err == nil {
		return
	}
	// A cache miss is not a failure.
	if err == redis.Nil {
		err = nil
	}
	if err != nil {
		h.logger.Errorw("Redis command failed", "command", cmd.Name(), "args", cmd.Args(), "duration", elapsed, "error", err)
		return
	}
	h.logger.Debugw("Redis command executed", "command", cmd.Name(), "duration", elapsed)
}
