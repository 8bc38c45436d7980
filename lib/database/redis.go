package database

import (
	"context"

	"github.com/madhu363/harvest-wheels-link/lib/config"

	"github.com/redis/go-redis/v9"
)

func InitRedis() (*redis.Client, error) {
	opt, err := redis.ParseURL(config.GetRedisURL())
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
