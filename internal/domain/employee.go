package domain

import (
	"context"
	"errors"
	"time"
)

// DateLayout is the wire format for date_of_joining.
const DateLayout = "2006-01-02"

var (
	// ErrDuplicateEmployeeID reports a unique-index violation on employee_id.
	ErrDuplicateEmployeeID = errors.New("employee_id already exists")
)

type Employee struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Name          string    `gorm:"size:128;not null" json:"name"`
	EmployeeID    string    `gorm:"uniqueIndex;size:64;not null" json:"employee_id"`
	Email         string    `gorm:"size:255;not null" json:"email"`
	Phone         string    `gorm:"size:32;not null" json:"phone"`
	Department    string    `gorm:"size:64;not null" json:"department"`
	DateOfJoining time.Time `gorm:"type:date;not null" json:"-"`
	Role          string    `gorm:"size:64;not null" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Employee) TableName() string { return "employees" }

// EmployeeRepository is the store contract: one statement per operation,
// rows-affected counts where the caller needs to tell "gone" from "never there".
type EmployeeRepository interface {
	Create(ctx context.Context, e *Employee) error
	DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error)
	UpdateByEmployeeID(ctx context.Context, employeeID string, e *Employee) (int64, error)
	List(ctx context.Context) ([]Employee, error)
}
