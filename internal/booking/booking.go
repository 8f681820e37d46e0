package booking

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const DateLayout = "2006-01-02"

var Services = []string{
	"Jewelry Consultation",
	"Custom Design Appointment",
	"Jewelry Repair Estimate",
	"Ring Sizing",
	"Cleaning & Inspection",
	"Private Viewing",
	"Anniversary Gift Selection",
	"Bridal Jewelry Consultation",
}

var TimeSlots = []string{
	"10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"12:00 PM", "12:30 PM", "1:00 PM", "1:30 PM",
	"2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM",
}

// Form is an appointment request. Date is a calendar day in DateLayout.
type Form struct {
	Name    string `json:"name" validate:"min=3"`
	Email   string `json:"email" validate:"email"`
	Phone   string `json:"phone" validate:"min=10"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Time    string `json:"time" validate:"one_of_list=time"`
	Service string `json:"service" validate:"one_of_list=service"`
	Message string `json:"message,omitempty"`
}

type Booking struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Service   string    `json:"service"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Confirmation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ValidationError maps a form field to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid booking: " + strings.Join(parts, "; ")
}

var messages = map[string]string{
	"name":    "Name must be at least 3 characters",
	"email":   "Please enter a valid email address",
	"phone":   "Please enter a valid phone number",
	"date":    "Please select a date",
	"time":    "Please select a time",
	"service": "Please select a service",
}

var lists = map[string][]string{"time": TimeSlots, "service": Services}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	_ = v.RegisterValidation("one_of_list", func(fl validator.FieldLevel) bool {
		for _, s := range lists[fl.Param()] {
			if s == fl.Field().String() {
				return true
			}
		}
		return false
	})
	return v
}

// Validate checks f against the opening calendar on the day of now:
// past days and Sundays cannot be booked.
func Validate(f Form, now time.Time) error {
	out := &ValidationError{Fields: map[string]string{}}
	if err := validate.Struct(f); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			out.Fields[fe.Field()] = messages[fe.Field()]
		}
	}
	if _, bad := out.Fields["date"]; !bad {
		day, _ := time.Parse(DateLayout, f.Date)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		switch {
		case day.Before(today):
			out.Fields["date"] = "Please select a date from today onwards"
		case day.Weekday() == time.Sunday:
			out.Fields["date"] = "We are closed on Sundays"
		}
	}
	if len(out.Fields) > 0 {
		return out
	}
	return nil
}

// Book keeps appointment requests in memory for the admin console.
type Book struct {
	mu       sync.RWMutex
	bookings []Booking
	now      func() time.Time
}

func NewBook() *Book { return &Book{now: time.Now} }

// Add validates f and records the booking.
func (b *Book) Add(_ context.Context, f Form) (Booking, Confirmation, error) {
	now := b.now()
	if err := Validate(f, now); err != nil {
		metrics.RecordBooking(false)
		return Booking{}, Confirmation{}, err
	}
	bk := Booking{
		ID:        "bk-" + uuid.NewString(),
		Name:      strings.TrimSpace(f.Name),
		Email:     f.Email,
		Phone:     f.Phone,
		Date:      f.Date,
		Time:      f.Time,
		Service:   f.Service,
		Message:   f.Message,
		CreatedAt: now.UTC(),
	}
	b.mu.Lock()
	b.bookings = append(b.bookings, bk)
	b.mu.Unlock()
	metrics.RecordBooking(true)
	return bk, Confirm(bk), nil
}

// List returns bookings, most recently requested first.
func (b *Book) List(_ context.Context) ([]Booking, error) {
	b.mu.RLock()
	out := make([]Booking, len(b.bookings))
	copy(out, b.bookings)
	b.mu.RUnlock()
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func Confirm(bk Booking) Confirmation {
	desc := fmt.Sprintf("Your %s is scheduled for %s at %s", bk.Service, bk.Date, bk.Time)
	if day, err := time.Parse(DateLayout, bk.Date); err == nil {
		desc = fmt.Sprintf("Your %s is scheduled for %s %s, %d at %s",
			bk.Service, day.Month(), ordinal(day.Day()), day.Year(), bk.Time)
	}
	return Confirmation{Title: "Booking confirmed", Description: desc}
}

func ordinal(n int) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
