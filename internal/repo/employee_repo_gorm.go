package repo

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"employee-records/internal/domain"
)

type EmployeeRepo struct{ db *gorm.DB }

func NewEmployeeRepo(db *gorm.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(e).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateEmployeeID
		}
		return err
	}
	return nil
}

func (r *EmployeeRepo) DeleteByEmployeeID(ctx context.Context, employeeID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("employee_id = ?", employeeID).Delete(&domain.Employee{})
	return tx.RowsAffected, tx.Error
}

// UpdateByEmployeeID rewrites the mutable columns of one record. The key
// column itself is never part of the update set.
func (r *EmployeeRepo) UpdateByEmployeeID(ctx context.Context, employeeID string, e *domain.Employee) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&domain.Employee{}).
		Where("employee_id = ?", employeeID).
		Updates(map[string]any{
			"name":            e.Name,
			"email":           e.Email,
			"phone":           e.Phone,
			"department":      e.Department,
			"date_of_joining": e.DateOfJoining,
			"role":            e.Role,
		})
	return tx.RowsAffected, tx.Error
}

func (r *EmployeeRepo) List(ctx context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	err := r.db.WithContext(ctx).Order("id asc").Find(&out).Error
	return out, err
}

// isDupKey matches unique-violation messages across mysql and postgres without
// pinning a driver error type.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
