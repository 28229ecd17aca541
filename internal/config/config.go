package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/evlasov/eshop/internal/log"
)

type Application struct {
	Env             string `mapstructure:"env"               json:"env"`
	Host            string `mapstructure:"host"              json:"host"`
	Port            int    `mapstructure:"port"              json:"port"`
	InsertStartData bool   `mapstructure:"insert_start_data" json:"insert_start_data"`
}

type Database struct {
	Name           string `mapstructure:"name"            json:"name"`
	Host           string `mapstructure:"host"            json:"host"`
	MigrationPath  string `mapstructure:"migration_path"  json:"migration_path"`
	Password       string `mapstructure:"password"        json:"password"`
	Username       string `mapstructure:"username"        json:"username"`
	IsolationLevel string `mapstructure:"isolation_level" json:"isolation_level"`
	MaxConnections int    `mapstructure:"max_connections" json:"max_connections"`
	MinConnections int    `mapstructure:"min_connections" json:"min_connections"`
	Port           uint16 `mapstructure:"port"            json:"port"`
}

// TxOptions translates the configured isolation level into pgx transaction
// options. Read committed is the lowest level cart mutations tolerate, so it
// is also the fallback.
func (d Database) TxOptions() pgx.TxOptions {
	switch pgx.TxIsoLevel(d.IsolationLevel) {
	case pgx.Serializable, pgx.RepeatableRead, pgx.ReadCommitted:
		return pgx.TxOptions{IsoLevel: pgx.TxIsoLevel(d.IsolationLevel)}
	default:
		return pgx.TxOptions{IsoLevel: pgx.ReadCommitted}
	}
}

type Otel struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
}

type Config struct {
	Database    `mapstructure:"db"          json:"db"`
	Application `mapstructure:"application" json:"application"`
	Otel        `mapstructure:"otel"        json:"otel"`
}

var (
	once   sync.Once
	config *Config
)

func InitConfig(c context.Context, filename string) *Config {
	cfg := Config{}
	once.Do(func() {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "main InitConfig").
			Str("filename", filename).
			Logger()

		viper.SetConfigName(filename)
		viper.AddConfigPath("./env")
		viper.SetConfigType("yaml")
		viper.AutomaticEnv()

		logger = logger.With().Str(log.KeyProcess, "reading config").Logger()
		logger.Info().Msg("reading config")
		err := viper.ReadInConfig()
		if err != nil {
			err = fmt.Errorf("error when reading config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		logger.Info().Msg("read config")

		logger = logger.With().Str(log.KeyProcess, "unmarshaling config").Logger()
		logger.Info().Msg("unmarshaling config")
		err = viper.Unmarshal(&cfg)
		if err != nil {
			err = fmt.Errorf("error unmarshaling config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		config = &cfg
		logger = logger.With().Any(log.KeyConfig, cfg).Logger()
		logger.Info().Msg("unmarshaled config")
	})
	return config
}
