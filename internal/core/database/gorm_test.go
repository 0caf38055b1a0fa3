package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMysqlDSN(t *testing.T) {
	dsn := mysqlDSN(Opts{Host: "127.0.0.1", Port: 3306, User: "root", Password: "pw", Name: "employees"})
	assert.Equal(t, "root:pw@tcp(127.0.0.1:3306)/employees?parseTime=true&charset=utf8mb4", dsn)
}

func TestMysqlDSN_NoPassword(t *testing.T) {
	dsn := mysqlDSN(Opts{Host: "db", Port: 3306, User: "root", Name: "employees"})
	assert.Equal(t, "root@tcp(db:3306)/employees?parseTime=true&charset=utf8mb4", dsn)
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(Opts{Host: "pg", Port: 5432, User: "records", Password: "pw", Name: "hr"})
	assert.Equal(t, "host=pg port=5432 user=records password=pw dbname=hr sslmode=disable", dsn)
}

func TestNewGorm_UnsupportedDriver(t *testing.T) {
	_, err := NewGorm(Opts{Driver: "sqlite"})
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
