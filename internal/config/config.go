package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

type PostgresCfg struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	Database string `env:"DB_NAME" envDefault:"adroit_design"`
	User     string `env:"DB_USER" envDefault:"adroit_user"`
	Password string `env:"DB_PASSWORD"`
	SslMode  string `env:"DB_SSL_MODE" envDefault:"disable"`
	// Small pool with no idle floor: the deployment target is a 2GB VM
	// talking to a remote database.
	PoolMaxConn    int           `env:"DB_POOL_MAX_CONN" envDefault:"5"`
	PoolMinConn    int           `env:"DB_POOL_MIN_CONN" envDefault:"0"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"20s"`
	StatementMs    int           `env:"DB_STATEMENT_TIMEOUT_MS" envDefault:"20000"`
}

type OdooCfg struct {
	URL      string        `env:"ODOO_URL" envDefault:"http://localhost:8069"`
	Database string        `env:"ODOO_DATABASE" envDefault:"odoo_db"`
	Username string        `env:"ODOO_USERNAME" envDefault:"admin"`
	Password string        `env:"ODOO_PASSWORD" envDefault:"admin"`
	APIKey   string        `env:"ODOO_API_KEY"`
	Timeout  time.Duration `env:"ODOO_TIMEOUT" envDefault:"10s"`
}

// EmailCfg may legitimately be empty: the mailer then runs disabled.
type EmailCfg struct {
	Host     string `env:"EMAIL_HOST"`
	Port     int    `env:"EMAIL_PORT" envDefault:"587"`
	Secure   bool   `env:"EMAIL_SECURE"`
	Username string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASSWORD"`
	From     string `env:"EMAIL_FROM"`
	NotifyTo string `env:"EMAIL_NOTIFY_TO"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type JwtCfg struct {
	Issuer        string        `env:"AUTH_JWT_ISSUER" envDefault:"studio-api"`
	TimeToLive    time.Duration `env:"AUTH_JWT_TIME_TO_LIVE" envDefault:"10m"`
	SigningMethod jwt.SigningMethod
	PrivateKey    crypto.PrivateKey
	PublicKey     crypto.PublicKey
}

type RefreshTokenCfg struct {
	MaxCount   int           `env:"AUTH_REFRESH_TOKEN_MAX_COUNT" envDefault:"5"`
	TimeToLive time.Duration `env:"AUTH_REFRESH_TOKEN_TIME_TO_LIVE" envDefault:"720h"`
}

type AuthCfg struct {
	JwtCfg          JwtCfg
	RefreshTokenCfg RefreshTokenCfg
}

type Config struct {
	PostgresCfg PostgresCfg
	OdooCfg     OdooCfg
	EmailCfg    EmailCfg
	RedisCfg    RedisCfg
	AuthCfg     AuthCfg
}

func Build() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	cfg.AuthCfg.JwtCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	privateKey, err := readJwtKey("AUTH_JWT_PRIVATE_KEY_FILE", jwt.ParseEdPrivateKeyFromPEM)
	if err != nil {
		return cfg, err
	}
	cfg.AuthCfg.JwtCfg.PrivateKey = privateKey

	publicKey, err := readJwtKey("AUTH_JWT_PUBLIC_KEY_FILE", jwt.ParseEdPublicKeyFromPEM)
	if err != nil {
		return cfg, err
	}
	cfg.AuthCfg.JwtCfg.PublicKey = publicKey

	return cfg, nil
}

func readJwtKey[T any](envVar string, parse func([]byte) (T, error)) (T, error) {
	var key T

	keyFile := os.Getenv(envVar)
	keyBytes, err := os.ReadFile(keyFile)
	if err != nil {
		return key, fmt.Errorf("failed to read key file %s - %w", envVar, err)
	}

	key, err = parse(keyBytes)
	if err != nil {
		return key, fmt.Errorf("failed to parse key from %s - %w", envVar, err)
	}
	return key, nil
}
