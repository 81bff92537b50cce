package main

import (
	"context"
	"flag"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PledgeBoard_Go/internal/config"
	"github.com/osse101/PledgeBoard_Go/internal/database"
)

func main() {
	force := flag.Bool("force", false, "drop and recreate the database")
	flag.Parse()

	cfg, err := config.LoadTooling()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if !*force {
		log.Fatalf("Refusing to drop database %s without -force", cfg.DBName)
	}

	serverPool, err := database.NewPool(cfg.GetAdminConnString(), 1, cfg.DBMaxConnIdle, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	ctx := context.Background()
	dbIdent := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1
		AND pid <> pg_backend_pid()
	`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: failed to terminate connections: %v", err)
	}

	log.Printf("Dropping database %s if it exists...", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+dbIdent); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+dbIdent); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("Database reset complete. Run cmd/setup to apply migrations.")
}
