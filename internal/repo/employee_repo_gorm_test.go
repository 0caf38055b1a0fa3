package repo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"employee-records/internal/domain"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func sampleEmployee() domain.Employee {
	return domain.Employee{
		Name:          "Ann",
		EmployeeID:    "E1",
		Email:         "a@x.com",
		Phone:         "123",
		Department:    "HR",
		DateOfJoining: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Role:          "Analyst",
	}
}

func TestCreate_Inserts(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec("INSERT INTO `employees`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	e := sampleEmployee()
	err := r.Create(context.Background(), &e)
	require.NoError(t, err)
	assert.Equal(t, uint(1), e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec("INSERT INTO `employees`").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'E1' for key 'employees.idx_employees_employee_id'"))

	e := sampleEmployee()
	err := r.Create(context.Background(), &e)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployeeID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateKeyPostgresWording(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec("INSERT INTO `employees`").
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_employees_employee_id" (SQLSTATE 23505)`))

	e := sampleEmployee()
	err := r.Create(context.Background(), &e)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmployeeID)
}

func TestCreate_OtherErrorPassesThrough(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	driverErr := errors.New("connection refused")
	mock.ExpectExec("INSERT INTO `employees`").WillReturnError(driverErr)

	e := sampleEmployee()
	err := r.Create(context.Background(), &e)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrDuplicateEmployeeID)
}

func TestDeleteByEmployeeID_RowsRemoved(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `employees` WHERE employee_id = ?")).
		WithArgs("E1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := r.DeleteByEmployeeID(context.Background(), "E1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteByEmployeeID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `employees` WHERE employee_id = ?")).
		WithArgs("E-absent").
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := r.DeleteByEmployeeID(context.Background(), "E-absent")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestUpdateByEmployeeID_RowsUpdated(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec("UPDATE `employees` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))

	e := sampleEmployee()
	n, err := r.UpdateByEmployeeID(context.Background(), "E1", &e)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestUpdateByEmployeeID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectExec("UPDATE `employees` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	e := sampleEmployee()
	n, err := r.UpdateByEmployeeID(context.Background(), "E-absent", &e)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestList_ReturnsRecords(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "name", "employee_id", "email", "phone", "department", "date_of_joining", "role", "created_at", "updated_at",
	}).
		AddRow(1, "Ann", "E1", "a@x.com", "123", "HR", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "Analyst", now, now).
		AddRow(2, "Bob", "E2", "b@x.com", "456", "Engineering", time.Date(2023, 5, 2, 0, 0, 0, 0, time.UTC), "Engineer", now, now)

	mock.ExpectQuery("SELECT \\* FROM `employees`").WillReturnRows(rows)

	got, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "E1", got[0].EmployeeID)
	assert.Equal(t, "Engineering", got[1].Department)
}

func TestList_DriverError(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewEmployeeRepo(db)

	mock.ExpectQuery("SELECT \\* FROM `employees`").
		WillReturnError(errors.New("server has gone away"))

	_, err := r.List(context.Background())
	assert.Error(t, err)
}
