package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv(t *testing.T) {
	dir := writeConfigFile(t, `
env:
  env: test
  serviceName: venuebook
  log:
    level: debug
http:
  port: 9090
postgres:
  host: db.internal
  port: 5432
  user: svc
  dbName: venuebook
auth:
  bcryptCost: 10
  accessTokenTTL: 12h
`)

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.Postgres.Host)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 12*time.Hour, cfg.Auth.AccessTokenTTL)
}

func TestLoadWithEnv_EnvOverride(t *testing.T) {
	dir := writeConfigFile(t, `
postgres:
  host: db.internal
  port: 5432
`)

	t.Setenv("POSTGRES_HOST", "other.internal")

	cfg, err := LoadWithEnv[Config]("config", dir)
	require.NoError(t, err)

	assert.Equal(t, "other.internal", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("config", t.TempDir())
	assert.Error(t, err)
}

func TestPostgres_DSN(t *testing.T) {
	p := Postgres{
		Host:     "localhost",
		Port:     5432,
		User:     "svc",
		Password: "secret",
		DBName:   "venuebook",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=svc password=secret dbname=venuebook sslmode=disable",
		p.DSN(),
	)
}
