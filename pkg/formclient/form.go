package formclient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

const dateLayout = "2006-01-02"

// joinDateCap is the last accepted joining date.
var joinDateCap = time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

var departments = []string{"HR", "Engineering", "Marketing"}

// Validation and fallback messages shown to the user.
const (
	msgDateBeyondCap  = "The date of joining cannot be beyond 2025."
	msgDateInFuture   = "The date of joining cannot be in the future."
	msgGenericError   = "An error occurred"
	msgDeleteFailed   = "Failed to delete the employee."
	msgFieldsRequired = "All fields are required."
)

// Form holds the client-side state of the employee form: the current field
// values, the local table of records, an optional edit marker and an error
// slot. The local table is a session-scoped projection; Load re-derives it
// from the server and a reload invalidates it.
//
// A mutex serializes the network-calling methods so at most one request is in
// flight per form.
type Form struct {
	mu        sync.Mutex
	api       API
	now       func() time.Time
	fields    Record
	records   []Record
	editingID string
	errMsg    string
}

func NewForm(api API) *Form {
	return &Form{api: api, now: time.Now}
}

// SetClock overrides the clock used by date validation.
func (f *Form) SetClock(now func() time.Time) { f.now = now }

func (f *Form) SetFields(r Record) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.editingID != "" {
		r.EmployeeID = f.editingID // key is immutable while editing
	}
	f.fields = r
}

func (f *Form) Fields() Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Records() []Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Record(nil), f.records...)
}

func (f *Form) EditingID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editingID
}

func (f *Form) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Load hydrates the local table from the server.
func (f *Form) Load(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	records, err := f.api.List(ctx)
	if err != nil {
		f.errMsg = msgGenericError
		return err
	}
	f.records = records
	return nil
}

// Submit validates the current fields and either creates a new record or,
// when an edit marker is set, persists the edit and replaces the matching
// local row. On success the fields are cleared and the record list updated.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	rec := f.fields
	if err := f.validate(rec); err != nil {
		f.errMsg = err.Error()
		return err
	}

	if f.editingID != "" {
		if err := f.api.Update(ctx, f.editingID, rec); err != nil {
			f.errMsg = errText(err)
			return err
		}
		for i := range f.records {
			if f.records[i].EmployeeID == f.editingID {
				f.records[i] = rec
				break
			}
		}
		f.resetLocked()
		return nil
	}

	if _, err := f.api.Create(ctx, rec); err != nil {
		f.errMsg = errText(err)
		return err
	}
	f.records = append(f.records, rec)
	f.resetLocked()
	return nil
}

// Edit copies a listed record back into the fields and marks it as being
// edited. Returns false when no local record has that key.
func (f *Form) Edit(employeeID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, r := range f.records {
		if r.EmployeeID == employeeID {
			f.fields = r
			f.editingID = employeeID
			return true
		}
	}
	return false
}

// Delete removes the record server-side and, on success, locally. Deleting
// the record currently being edited also clears the marker and the fields.
func (f *Form) Delete(ctx context.Context, employeeID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.api.Delete(ctx, employeeID); err != nil {
		f.errMsg = msgDeleteFailed
		return err
	}

	kept := f.records[:0]
	for _, r := range f.records {
		if r.EmployeeID != employeeID {
			kept = append(kept, r)
		}
	}
	f.records = kept
	if f.editingID == employeeID {
		f.resetLocked()
	}
	return nil
}

// Reset clears the fields, the error slot and the edit marker. The local
// record list is untouched.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

func (f *Form) resetLocked() {
	f.fields = Record{}
	f.errMsg = ""
	f.editingID = ""
}

// validate runs the pre-submission checks. The year-end cap is evaluated
// before the future check so both bounds stay reachable.
func (f *Form) validate(r Record) error {
	if r.Name == "" || r.EmployeeID == "" || r.Email == "" || r.Phone == "" ||
		r.Department == "" || r.DateOfJoining == "" || r.Role == "" {
		return errors.New(msgFieldsRequired)
	}
	if !validDepartment(r.Department) {
		return fmt.Errorf("department must be one of %s", strings.Join(departments, ", "))
	}
	selected, err := time.Parse(dateLayout, r.DateOfJoining)
	if err != nil {
		return errors.New("The date of joining must be YYYY-MM-DD.")
	}
	if selected.After(joinDateCap) {
		return errors.New(msgDateBeyondCap)
	}
	if selected.After(f.now()) {
		return errors.New(msgDateInFuture)
	}
	return nil
}

func validDepartment(d string) bool {
	for _, want := range departments {
		if d == want {
			return true
		}
	}
	return false
}

// errText prefers the server's error text and falls back to a generic notice
// on transport failures.
func errText(err error) string {
	var ae *APIError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return msgGenericError
}
