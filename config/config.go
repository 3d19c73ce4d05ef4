package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"       default:"development"`
		LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"NAME"     default:"roomslots"`
		Timezone string `envconfig:"TIMEZONE" default:"UTC"`
	} `envconfig:"APP"`

	Generator struct {
		ExistingSlotsPath string  `envconfig:"EXISTING_SLOTS_PATH" default:"Room Slots_rows_old.csv"`
		RoomsPath         string  `envconfig:"ROOMS_PATH"          default:"Rooms_rows (1)_use.csv"`
		OutputPath        string  `envconfig:"OUTPUT_PATH"         default:"Room_Slots_Expanded.csv"`
		ExcludedBusiness  string  `envconfig:"EXCLUDED_BUSINESS"   default:"iEscape Rooms"`
		Seed              *uint64 `envconfig:"SEED"`
	} `envconfig:"GENERATOR"`

	Metrics struct {
		TextfilePath string `envconfig:"TEXTFILE_PATH"`
	} `envconfig:"METRICS"`

	Publish struct {
		Postgres struct {
			Enable         bool   `envconfig:"ENABLE"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"    default:"true"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationPath  string `envconfig:"MIGRATION_PATH"  default:"file://migrations/postgres"`
			BatchSize      int    `envconfig:"BATCH_SIZE"      default:"500"`
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"3"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			Host           string `envconfig:"HOST"            default:"localhost"`
			Port           string `envconfig:"PORT"            default:"5432"`
			Username       string `envconfig:"USER"            default:"postgres"`
			Password       string `envconfig:"PASSWORD"`
			Name           string `envconfig:"NAME"            default:"postgres"`
			SSLMode        string `envconfig:"SSL_MODE"        default:"disable"`
		} `envconfig:"POSTGRES"`
		S3 struct {
			Enable          bool   `envconfig:"ENABLE"`
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			Region          string `envconfig:"REGION"        default:"auto"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
			Prefix          string `envconfig:"PREFIX"        default:"room-slots"`
		} `envconfig:"S3"`
	} `envconfig:"PUBLISH"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Debug().Err(loadErr).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Debug().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			return
		}

		initialized = true
	})

	if err != nil {
		return fmt.Errorf("processing environment variables: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
