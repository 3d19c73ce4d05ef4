package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"roomslots/config"
)

const (
	postgresMaxIdleConnection = 2
	postgresMaxOpenConnection = 4
)

type Connection struct {
	Write *sqlx.DB
}

// New connects only when publishing to Postgres is enabled. Write stays nil otherwise
// or when every retry failed.
func New(config *config.Config) (*Connection, func()) {
	conn := &Connection{}

	if config.Publish.Postgres.Enable {
		conn.Write = CreatePostgresWriteConn(config)
	}

	cleanup := func() {
		if conn.Write != nil {
			if err := conn.Write.Close(); err != nil {
				log.Error().Err(err).Msg("Failed to close database connection")
			}
		}
	}

	return conn, cleanup
}

// DSN returns the connection URL shared by sqlx and the migrator.
func DSN(config *config.Config) string {
	pg := config.Publish.Postgres

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		pg.Username,
		pg.Password,
		net.JoinHostPort(pg.Host, pg.Port),
		pg.Name,
		pg.SSLMode,
	)
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config *config.Config) *sqlx.DB {
	pg := config.Publish.Postgres

	return CreatePostgresConnection("write", DSN(config), pg.Host, pg.Port, pg.Name, pg.MaxRetry, pg.RetryWaitTime)
}

// CreatePostgresConnection creates a database connection.
func CreatePostgresConnection(name, descriptor, host, port, dbName string, maxRetry, waitTime int) *sqlx.DB {
	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
