package pg

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

const defaultStatementTimeoutMillis = 60000

type Config struct {
	Host                   string `envconfig:"HOST"`
	Port                   string `envconfig:"PORT"`
	Username               string `envconfig:"USERNAME"`
	Password               string `envconfig:"PASSWORD"`
	Database               string `envconfig:"DATABASE"`
	SSLMode                string `envconfig:"SSL_MODE"`
	StatementTimeoutMillis int    `envconfig:"STATEMENT_TIMEOUT" default:"60000"`
	MaxOpenConns           int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns           int    `envconfig:"MAX_IDLE_CONNS" default:"5"`
}

func (c *Config) dsn() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode)
}

// NewConnection открывает пул через pgx stdlib-драйвер, проверяет его пингом
// и выставляет statement_timeout
func (c *Config) NewConnection() (*sqlx.DB, error) {
	pgxCfg, err := pgx.ParseConfig(c.dsn())
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	db, err := sqlx.Connect("pgx", stdlib.RegisterConnConfig(pgxCfg))
	if err != nil {
		return nil, fmt.Errorf("connect db error: %w", err)
	}

	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(time.Minute)

	if err = db.Ping(); err != nil {
		return nil, err
	}

	timeout := c.StatementTimeoutMillis
	if timeout <= 0 {
		timeout = defaultStatementTimeoutMillis
	}
	if _, err = db.Exec(fmt.Sprintf("SET statement_timeout = %d", timeout)); err != nil {
		return nil, fmt.Errorf("set statement_timeout failed: %w", err)
	}

	return db, nil
}
