// Package validate checks raw contact form input. Rules accumulate per
// field rather than short-circuiting, so a single submission reports
// every problem at once.
package validate

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/zhouzirui/kontak/internal/model/contact"
)

const (
	NameMin    = 3
	NameMax    = 50
	AddressMax = 200
)

var phonePattern = regexp.MustCompile(`^[0-9]{10,13}$`)

// validate is the shared validator instance for form fields.
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Result pairs field errors with the normalized (trimmed) values.
// Fields is populated even when Errors is non-empty so the caller can
// echo the submission back to the user.
type Result struct {
	Errors map[string]string
	Fields contact.Fields
}

// Valid reports whether the submission passed every rule.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Contact validates raw form values for an add or update submission.
// It has no side effects.
func Contact(raw url.Values) Result {
	errs := make(map[string]string)

	name := strings.TrimSpace(raw.Get("name"))
	switch {
	case len([]rune(name)) < NameMin:
		errs["name"] = "Name must be at least 3 characters"
	case len([]rune(name)) > NameMax:
		errs["name"] = "Name must be at most 50 characters"
	}

	email := strings.TrimSpace(raw.Get("email"))
	if email == "" {
		errs["email"] = "Email is required"
	} else if err := validate.Var(email, "email"); err != nil {
		errs["email"] = "Email format is invalid"
	}

	phone := strings.TrimSpace(raw.Get("phone"))
	if phone == "" {
		errs["phone"] = "Phone number is required"
	} else if !phonePattern.MatchString(phone) {
		errs["phone"] = "Phone number must be 10-13 digits"
	}

	rawCategory := raw.Get("category")
	category, ok := contact.ParseCategory(rawCategory)
	if !ok {
		errs["category"] = "Select a valid category"
		// Echo the rejected value back so the form can re-select it.
		category = contact.Category(rawCategory)
	}

	address := strings.TrimSpace(raw.Get("address"))
	if address != "" && len([]rune(address)) > AddressMax {
		errs["address"] = "Address must be at most 200 characters"
	}

	return Result{
		Errors: errs,
		Fields: contact.Fields{
			Name:     name,
			Email:    email,
			Phone:    phone,
			Category: category,
			Address:  address,
		},
	}
}
