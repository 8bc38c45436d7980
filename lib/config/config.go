package config

import (
	"github.com/spf13/viper"
)

func LoadConfig() error {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()
	return viper.ReadInConfig()
}

func GetDBConnectionString() string {
	return viper.GetString("POSTGRES_URL")
}

func GetRedisURL() string {
	return viper.GetString("REDIS_URL")
}

func GetMongoURL() string {
	return viper.GetString("MONGO_URL")
}
