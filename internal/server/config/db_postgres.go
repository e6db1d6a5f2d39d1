package config

import (
	"database/sql"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
)

// DB — глобальный экземпляр подключения к базе данных.
//
// Инициализируется один раз функцией Init при старте сервера;
// остальные пакеты получают его через GetDB.
var DB *sql.DB

// Init открывает подключение к PostgreSQL (драйвер pgx поверх database/sql),
// настраивает пул соединений по значениям из конфига, проверяет доступность
// базы (Ping) и, если миграции включены, применяет их.
//
// При любой ошибке соединение закрывается и глобальный DB не трогается.
func Init(cfg *Config) error {
	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		return fmt.Errorf("db open: %w", err)
	}

	if cfg.DB.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
	}
	if cfg.DB.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.DB.MaxIdleConns)
	}
	if cfg.DB.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("db ping: %w", err)
	}

	if cfg.Migrations.Enabled {
		if err := runMigrations(db, cfg.Migrations.Path); err != nil {
			db.Close()
			return err
		}
	}

	DB = db
	return nil
}

// runMigrations применяет миграции из каталога path (источник file://).
// migrate.ErrNoChange означает, что все миграции уже применены, — это не ошибка.
func runMigrations(db *sql.DB, path string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrations init: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migrations up: %w", err)
	}
	return nil
}

// GetDB возвращает текущий глобальный экземпляр *sql.DB.
// До успешного Init возвращает nil.
func GetDB() *sql.DB {
	return DB
}
