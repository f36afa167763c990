package persistence

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqliteInMemory = ":memory:"

// NewDBConnection opens the catalog database described by settings. For postgres and
// mysql the DSN addresses the server and DBName is created on first use.
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	case config.MysqlDbType:
		db, err = connectMySQL(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}
	if err != nil {
		return nil, err
	}

	if settings.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(settings.MaxOpenConns)
	}

	return db, nil
}

func gormConfig() *gorm.Config {
	return &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}
}

// execOnServer runs a single statement on a short-lived server connection
func execOnServer(dialector gorm.Dialector, statement string) error {
	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return err
	}
	defer func() { _ = CloseDB(db) }()

	return db.Exec(statement).Error
}

func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	if settings.DBName == "" {
		return openDB(postgres.Open(settings.DSN), "PostgreSQL")
	}

	// PostgreSQL has no CREATE DATABASE IF NOT EXISTS; an existing database makes this fail harmlessly
	_ = execOnServer(postgres.Open(settings.DSN), fmt.Sprintf(`CREATE DATABASE "%s"`, settings.DBName))

	return openDB(postgres.Open(fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)), "PostgreSQL")
}

func connectMySQL(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if settings.DBName != "" && mysqlDSNWithoutDatabase(dsn) {
		statement := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", settings.DBName)
		if err := execOnServer(mysql.Open(dsn), statement); err != nil {
			return nil, fmt.Errorf("failed to create database '%s': %w", settings.DBName, err)
		}
		dsn = mysqlDSNForDatabase(dsn, settings.DBName)
	}
	return openDB(mysql.Open(withParseTime(dsn)), "MySQL")
}

func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if dsn == "" {
		dsn = sqliteInMemory
	}

	db, err := openDB(sqlite.Open(dsn), "SQLite")
	if err != nil {
		return nil, err
	}

	// Every connection to :memory: opens its own empty database
	if dsn == sqliteInMemory {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get raw DB connection: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func openDB(dialector gorm.Dialector, name string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", name, err)
	}
	return db, nil
}

// mysqlDSNWithoutDatabase reports whether a go-sql-driver DSN ends its address part
// with "/" and therefore names no database.
func mysqlDSNWithoutDatabase(dsn string) bool {
	base, _, _ := strings.Cut(dsn, "?")
	return strings.HasSuffix(base, "/")
}

func mysqlDSNForDatabase(dsn, dbName string) string {
	base, params, hasParams := strings.Cut(dsn, "?")
	dsn = base + dbName
	if hasParams {
		dsn += "?" + params
	}
	return dsn
}

// withParseTime makes the driver scan DATETIME columns into time.Time
func withParseTime(dsn string) string {
	if strings.Contains(strings.ToLower(dsn), "parsetime=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

// DropDatabase drops a PostgreSQL database. Used to clean up integration test databases.
func DropDatabase(adminDSN, dbName string) error {
	err := execOnServer(postgres.Open(adminDSN), fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, dbName))
	if err != nil {
		return fmt.Errorf("failed to drop database '%s': %w", dbName, err)
	}
	return nil
}
