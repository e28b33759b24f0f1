package repository_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
)

func startPostgres(ctx context.Context) (*postgres.PostgresContainer, string, error) {
	postgresContainer, err := postgres.Run(ctx, "postgres:17.6-alpine3.22",
		postgres.BasicWaitStrategies(),
		postgres.WithInitScripts(
			"../migrations/postgres/01_kv_entries.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("postgres.Run: %w", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", fmt.Errorf("pc.ConnectionString: %w", err)
	}

	return postgresContainer, connStr, nil
}

func startMongo(ctx context.Context) (*mongodb.MongoDBContainer, string, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, "", fmt.Errorf("mongodb.Run: %w", err)
	}

	uri, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("mc.ConnectionString: %w", err)
	}

	return mongoContainer, uri, nil
}

func startMySQL(ctx context.Context) (*mysql.MySQLContainer, string, error) {
	mysqlContainer, err := mysql.Run(ctx, "mysql:8.4",
		mysql.WithDatabase("storefront"),
		mysql.WithUsername("storefront"),
		mysql.WithPassword("storefront"),
		mysql.WithScripts("../migrations/mysql/01_kv_entries.up.sql"),
	)
	if err != nil {
		return nil, "", fmt.Errorf("mysql.Run: %w", err)
	}

	dsn, err := mysqlContainer.ConnectionString(ctx, "parseTime=true")
	if err != nil {
		return nil, "", fmt.Errorf("mc.ConnectionString: %w", err)
	}

	return mysqlContainer, dsn, nil
}
