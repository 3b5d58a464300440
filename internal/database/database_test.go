package database

import (
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/realestate/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(env string) *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: env},
		Database: config.DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "estate",
			Password:        "secret",
			Name:            "realestate",
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    4,
			ConnMaxLifetime: 300,
			ConnMaxIdleTime: 60,
		},
	}
}

func TestPoolConfig_Sizing(t *testing.T) {
	logger := zerolog.Nop()

	cfg, err := poolConfig(testConfig("development"), &logger, nil)
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(4), cfg.MinConns)
	assert.Equal(t, 300*time.Second, cfg.MaxConnLifetime)
	assert.Equal(t, 60*time.Second, cfg.MaxConnIdleTime)
	assert.Equal(t, "realestate", cfg.ConnConfig.Database)
	assert.Nil(t, cfg.ConnConfig.Tracer)
}

func TestPoolConfig_LocalTracing(t *testing.T) {
	logger := zerolog.Nop()

	cfg, err := poolConfig(testConfig("local"), &logger, nil)
	require.NoError(t, err)

	_, ok := cfg.ConnConfig.Tracer.(*tracelog.TraceLog)
	assert.True(t, ok, "local environment should log SQL")
}

func TestMigrations_Embedded(t *testing.T) {
	subtree, err := Migrations()
	require.NoError(t, err)

	files, err := fs.Glob(subtree, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	schema, err := fs.ReadFile(subtree, "001_create_schema.sql")
	require.NoError(t, err)
	for _, table := range []string{
		"users", "agencies", "brokers", "properties", "features", "location",
		"property_images", "property_videos", "listing_property", "bids", "offers",
		"favorites", "notifications", "price_history", "property_views",
		"comparison_lists", "comparison_list_items",
	} {
		assert.Contains(t, string(schema), "CREATE TABLE "+table+" (", table)
	}
	assert.True(t, strings.Contains(string(schema), "---- create above / drop below ----"))
}
