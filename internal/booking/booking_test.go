package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Wednesday.
var now = time.Date(2024, 6, 12, 15, 0, 0, 0, time.UTC)

func validForm() Form {
	return Form{
		Name: "Ava Stone", Email: "ava@example.com", Phone: "5551234567",
		Date: "2024-06-14", Time: "10:30 AM", Service: "Ring Sizing",
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	return verr.Fields
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validForm(), now))

	f := validForm()
	f.Date = "2024-06-12"
	assert.NoError(t, Validate(f, now), "today is bookable")

	tests := []struct {
		name  string
		edit  func(*Form)
		field string
		msg   string
	}{
		{"short name", func(f *Form) { f.Name = "Al" }, "name", "Name must be at least 3 characters"},
		{"bad email", func(f *Form) { f.Email = "ava" }, "email", "Please enter a valid email address"},
		{"short phone", func(f *Form) { f.Phone = "555" }, "phone", "Please enter a valid phone number"},
		{"missing date", func(f *Form) { f.Date = "" }, "date", "Please select a date"},
		{"malformed date", func(f *Form) { f.Date = "14/06/2024" }, "date", "Please select a date"},
		{"past date", func(f *Form) { f.Date = "2024-06-11" }, "date", "Please select a date from today onwards"},
		{"sunday", func(f *Form) { f.Date = "2024-06-16" }, "date", "We are closed on Sundays"},
		{"unknown slot", func(f *Form) { f.Time = "9:00 AM" }, "time", "Please select a time"},
		{"unknown service", func(f *Form) { f.Service = "Piercing" }, "service", "Please select a service"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.edit(&f)
			fields := fieldErrors(t, Validate(f, now))
			assert.Equal(t, tt.msg, fields[tt.field])
			assert.Len(t, fields, 1)
		})
	}
}

func TestBook_AddAndList(t *testing.T) {
	b := NewBook()
	b.now = func() time.Time { return now }
	ctx := context.Background()

	bk, c, err := b.Add(ctx, validForm())
	require.NoError(t, err)
	assert.Contains(t, bk.ID, "bk-")
	assert.Equal(t, "Booking confirmed", c.Title)
	assert.Equal(t, "Your Ring Sizing is scheduled for June 14th, 2024 at 10:30 AM", c.Description)

	_, _, err = b.Add(ctx, Form{})
	assert.Error(t, err)

	b.now = func() time.Time { return now.Add(time.Hour) }
	f := validForm()
	f.Service = "Private Viewing"
	_, _, err = b.Add(ctx, f)
	require.NoError(t, err)

	list, err := b.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Private Viewing", list[0].Service)
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 31: "31st"} {
		assert.Equal(t, want, ordinal(n))
	}
}
