package formclient

import "context"

// MockAPI implements API with overridable functions for tests.
type MockAPI struct {
	CreateFunc func(ctx context.Context, rec Record) (string, error)
	UpdateFunc func(ctx context.Context, employeeID string, rec Record) error
	DeleteFunc func(ctx context.Context, employeeID string) error
	ListFunc   func(ctx context.Context) ([]Record, error)
}

func (m *MockAPI) Create(ctx context.Context, rec Record) (string, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	return "Employee added successfully", nil
}

func (m *MockAPI) Update(ctx context.Context, employeeID string, rec Record) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, employeeID, rec)
	}
	return nil
}

func (m *MockAPI) Delete(ctx context.Context, employeeID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, employeeID)
	}
	return nil
}

func (m *MockAPI) List(ctx context.Context) ([]Record, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}
