package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database types supported by persistence.NewDBConnection
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
	MysqlDbType    = "mysql"
)

// DatabaseSettings holds the connection parameters for the catalog database.
// For sqlite the DSN is a file path or ":memory:".
type DatabaseSettings struct {
	Type         string `yaml:"type" validate:"required,oneof=postgres sqlite mysql"`
	DSN          string `yaml:"dsn" validate:"required"`
	DBName       string `yaml:"db_name" validate:"required"`
	MaxOpenConns int    `yaml:"max_open_conns" validate:"min=0"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
