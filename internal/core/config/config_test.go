package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load("")

	assert.Equal(t, "employee-records", c.App.Name)
	assert.Equal(t, 5000, c.App.HTTP.Port)
	assert.Equal(t, "mysql", c.DB.Driver)
	assert.Equal(t, "employees", c.DB.Name)
	assert.True(t, c.DB.AutoMigrate)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "records")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "hr")
	t.Setenv("PORT", "6001")

	c := Load("")

	assert.Equal(t, "db.internal", c.DB.Host)
	assert.Equal(t, "records", c.DB.User)
	assert.Equal(t, "secret", c.DB.Password)
	assert.Equal(t, "hr", c.DB.Name)
	assert.Equal(t, 6001, c.App.HTTP.Port)
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_DB_DRIVER", "postgres")
	t.Setenv("APP_DB_HOST", "pg.internal")

	c := Load("")

	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "postgres", c.DB.Driver)
	assert.Equal(t, "pg.internal", c.DB.Host)
}
