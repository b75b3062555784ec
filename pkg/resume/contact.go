package resume

import (
	"net/mail"
	"strings"

	"github.com/spf13/cast"
)

// Contact field names.
const (
	FieldFirstName  = "firstName"
	FieldLastName   = "lastName"
	FieldPostalCode = "postalCode"
	FieldPhone      = "phone"
	FieldEmail      = "email"
)

// ContactFields lists the contact form fields in display order.
var ContactFields = []string{FieldFirstName, FieldLastName, FieldCity, FieldPostalCode, FieldPhone, FieldEmail}

// Contact is the single contact details form. All fields are required but
// the check is advisory: it never blocks navigation.
type Contact struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	City       string `yaml:"city"`
	PostalCode string `yaml:"postal_code"`
	Phone      string `yaml:"phone"`
	Email      string `yaml:"email"`
}

// Set assigns a contact field by name.
func (c *Contact) Set(field string, value any) bool {
	p := c.field(field)
	if p == nil {
		return false
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return false
	}
	*p = s
	return true
}

// Field returns the value of a contact field.
func (c *Contact) Field(field string) string {
	if p := c.field(field); p != nil {
		return *p
	}
	return ""
}

func (c *Contact) field(name string) *string {
	switch name {
	case FieldFirstName:
		return &c.FirstName
	case FieldLastName:
		return &c.LastName
	case FieldCity:
		return &c.City
	case FieldPostalCode:
		return &c.PostalCode
	case FieldPhone:
		return &c.Phone
	case FieldEmail:
		return &c.Email
	}
	return nil
}

// Missing returns the required fields that are still empty.
func (c *Contact) Missing() []string {
	var out []string
	for _, f := range ContactFields {
		if c.Field(f) == "" {
			out = append(out, f)
		}
	}
	return out
}

// Complete reports whether every contact field is filled.
func (c *Contact) Complete() bool { return len(c.Missing()) == 0 }

// FullName joins first and last name.
func (c *Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// Checked reports whether a field earns the check mark shown next to phone
// and email inputs once they hold a plausible value.
func (c *Contact) Checked(field string) bool {
	switch field {
	case FieldEmail:
		_, err := mail.ParseAddress(c.Email)
		return c.Email != "" && err == nil
	case FieldPhone:
		digits := 0
		for _, r := range c.Phone {
			if r >= '0' && r <= '9' {
				digits++
			}
		}
		return digits >= 7
	}
	return false
}
