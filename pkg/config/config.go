package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "SHOPLIST"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "SHOPLIST_DB_DSN"
	EnvDBHost = "SHOPLIST_DB_HOST"
	EnvDBUser = "SHOPLIST_DB_USER"
	EnvDBName = "SHOPLIST_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPLIST_APP_ENV" required:"true"`
	Port         string `envconfig:"SHOPLIST_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SHOPLIST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPLIST_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"SHOPLIST_DB_DSN"`
	Driver string `envconfig:"SHOPLIST_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"SHOPLIST_DB_HOST"`
	LegacyPort     int    `envconfig:"SHOPLIST_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"SHOPLIST_DB_USER"`
	LegacyPassword string `envconfig:"SHOPLIST_DB_PASSWORD"`
	LegacyName     string `envconfig:"SHOPLIST_DB_NAME"`
	LegacySSLMode  string `envconfig:"SHOPLIST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"SHOPLIST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"SHOPLIST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"SHOPLIST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SHOPLIST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SHOPLIST_REDIS_URL"`
	Address      string        `envconfig:"SHOPLIST_REDIS_ADDR"`
	Password     string        `envconfig:"SHOPLIST_REDIS_PASSWORD"`
	DB           int           `envconfig:"SHOPLIST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SHOPLIST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"SHOPLIST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"SHOPLIST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SHOPLIST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SHOPLIST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"SHOPLIST_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"SHOPLIST_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"SHOPLIST_JWT_EXPIRATION_MINUTES" default:"60"`
}

// AccessTokenTTL returns the access token lifetime configured in minutes.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"SHOPLIST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"SHOPLIST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"SHOPLIST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"SHOPLIST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"SHOPLIST_ARGON_KEY_LEN" default:"32"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"SHOPLIST_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"SHOPLIST_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
