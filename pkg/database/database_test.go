package database

import (
	"learnpath_backend/internal/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	mysqlCfg := &config.DatabaseConfig{
		Driver: "mysql", Host: "127.0.0.1", Port: 3306, User: "root", Password: "pw",
		DBName: "learnpath", Charset: "utf8mb4", ParseTime: true,
	}
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/learnpath?charset=utf8mb4&parseTime=true&loc=Local", DSN(mysqlCfg))

	pgCfg := &config.DatabaseConfig{Driver: "postgres", Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "learnpath"}
	assert.Equal(t, "host=db port=5432 user=app password=pw dbname=learnpath sslmode=disable", DSN(pgCfg))
}

func TestInitRedis_Disabled(t *testing.T) {
	rdb, err := InitRedis(&config.RedisConfig{Enabled: false})
	require.NoError(t, err)
	assert.Nil(t, rdb)
}
