package checkout

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var PaymentMethods = []string{"Credit Card", "PayPal", "Bank Transfer"}

type AddressForm struct {
	Street    string `json:"street" validate:"min=5"`
	Apartment string `json:"apartment,omitempty"`
	City      string `json:"city" validate:"min=2"`
	State     string `json:"state" validate:"min=2"`
	ZipCode   string `json:"zipCode" validate:"min=5"`
	Country   string `json:"country" validate:"min=2"`
}

// Form is the checkout form. Use NewForm before decoding so SameAsBilling
// defaults to true.
type Form struct {
	FirstName       string       `json:"firstName" validate:"min=2"`
	LastName        string       `json:"lastName" validate:"min=2"`
	Email           string       `json:"email" validate:"email"`
	Phone           string       `json:"phone" validate:"min=10"`
	ShippingAddress AddressForm  `json:"shippingAddress"`
	SameAsBilling   bool         `json:"sameAsBilling"`
	BillingAddress  *AddressForm `json:"billingAddress,omitempty"`
	PaymentMethod   string       `json:"paymentMethod" validate:"payment_method"`
	Notes           string       `json:"notes,omitempty"`
}

func NewForm() Form { return Form{SameAsBilling: true} }

// ValidationError maps a form field path (e.g. "shippingAddress.zipCode")
// to a user-facing message.
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
	return "invalid checkout form: " + strings.Join(parts, "; ")
}

var messages = map[string]string{
	"firstName":      "First name must be at least 2 characters",
	"lastName":       "Last name must be at least 2 characters",
	"email":          "Please enter a valid email address",
	"phone":          "Please enter a valid phone number",
	"street":         "Street address is required",
	"city":           "City is required",
	"state":          "State is required",
	"zipCode":        "Zip code is required",
	"country":        "Country is required",
	"paymentMethod":  "Please select a payment method",
	"billingAddress": "Billing address is required",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("payment_method", func(fl validator.FieldLevel) bool {
		method := fl.Field().String()
		for _, m := range PaymentMethods {
			if m == method {
				return true
			}
		}
		return false
	})
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		f := sl.Current().Interface().(Form)
		if !f.SameAsBilling && f.BillingAddress == nil {
			sl.ReportError(f.BillingAddress, "billingAddress", "BillingAddress", "required", "")
		}
	}, Form{})
	return v
}

// Validate checks f. The billing address is only validated when
// SameAsBilling is false.
func Validate(f Form) error {
	if f.SameAsBilling {
		f.BillingAddress = nil
	}
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &ValidationError{Fields: map[string]string{}}
	for _, fe := range verrs {
		path := strings.TrimPrefix(fe.Namespace(), "Form.")
		field := path[strings.LastIndex(path, ".")+1:]
		msg, ok := messages[field]
		if !ok {
			msg = field + " is invalid"
		}
		out.Fields[path] = msg
	}
	return out
}
