package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"BE-HOTEL-ADMIN/config"
	_ "github.com/lib/pq"
)

// Database owns the connection pool behind the postgres snapshot store.
type Database interface {
	GetDB() *sql.DB
	Close() error
}

type postgres struct {
	db *sql.DB
}

func NewPostgresDatabase(ctx context.Context, cfg *config.Config) (Database, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("connected to DB %s on port %d", cfg.Database.DBName, cfg.Database.Port)

	return &postgres{db: db}, nil
}

func (p *postgres) GetDB() *sql.DB {
	return p.db
}

func (p *postgres) Close() error {
	return p.db.Close()
}
