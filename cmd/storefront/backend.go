package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront-cart/internal/config"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/nikolayk812/storefront-cart/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// openBackend connects the configured key-value medium. The returned func
// releases its connections.
func openBackend(ctx context.Context, cfg config.Config) (port.KVStore, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case "memory":
		return repository.NewMemory(), noop, nil

	case "file":
		store, err := repository.NewFile(cfg.FileDir)
		if err != nil {
			return nil, nil, fmt.Errorf("repository.NewFile: %w", err)
		}
		return store, noop, nil

	case "postgres":
		pool, err := pgxpool.New(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("pool.Ping: %w", err)
		}

		store, err := repository.NewPostgres(pool)
		if err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("repository.NewPostgres: %w", err)
		}
		return store, pool.Close, nil

	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
		}
		closeFn := func() { _ = client.Disconnect(context.Background()) }

		if err := client.Ping(ctx, nil); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("client.Ping: %w", err)
		}

		store, err := repository.NewMongo(client.Database(cfg.MongoDatabase))
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("repository.NewMongo: %w", err)
		}
		return store, closeFn, nil

	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("sql.Open: %w", err)
		}
		closeFn := func() { _ = db.Close() }

		if err := db.PingContext(ctx); err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("db.PingContext: %w", err)
		}

		store, err := repository.NewMySQL(db)
		if err != nil {
			closeFn()
			return nil, nil, fmt.Errorf("repository.NewMySQL: %w", err)
		}
		return store, closeFn, nil
	}

	return nil, nil, fmt.Errorf("backend[%s] is not supported", cfg.Backend)
}
