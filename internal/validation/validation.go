// Package validation holds the contact form field predicates and their
// registration as go-playground/validator tags.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Form field names, shared by the HTML form, the JSON API and the log file.
const (
	FieldName       = "jmeno"
	FieldEmail      = "email"
	FieldPhone      = "telefon"
	FieldPostalCode = "psc"
	FieldMessage    = "zprava"
)

// Validator tags registered by New.
const (
	TagName       = "person_name"
	TagEmail      = "contact_email"
	TagPhone      = "cz_phone"
	TagPostalCode = "cz_postal_code"
)

// User-facing messages, one per failing field.
const (
	MsgInvalidName       = "Jméno musí obsahovat pouze písmena a minimálně 2 znaky."
	MsgInvalidEmail      = "Neplatná emailová adresa."
	MsgInvalidPhone      = "Neplatné telefonní číslo. Použijte formát: +420XXXXXXXXX nebo XXXXXXXXX"
	MsgInvalidPostalCode = "Neplatné PSČ. Použijte formát: XXXXX nebo XXX XX"
)

var (
	namePattern       = regexp.MustCompile(`^[\p{L} -]+$`)
	emailPattern      = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern      = regexp.MustCompile(`^(\+420)?[0-9]{9}$`)
	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

var messages = map[string]string{
	FieldName:       MsgInvalidName,
	FieldEmail:      MsgInvalidEmail,
	FieldPhone:      MsgInvalidPhone,
	FieldPostalCode: MsgInvalidPostalCode,
}

// ValidName accepts letters (any script, Czech diacritics included), spaces
// and hyphens, at least two characters long.
func ValidName(name string) bool {
	return utf8.RuneCountInString(name) >= 2 && namePattern.MatchString(name)
}

// ValidEmail accepts local@domain.tld with a TLD of two or more letters.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPhone accepts nine digits with an optional +420 prefix once spaces
// and hyphens are removed.
func ValidPhone(phone string) bool {
	return phonePattern.MatchString(NormalizePhone(phone))
}

// ValidPostalCode accepts exactly five digits once spaces are removed.
func ValidPostalCode(psc string) bool {
	return postalCodePattern.MatchString(NormalizePostalCode(psc))
}

// NormalizePhone strips spaces and hyphens.
func NormalizePhone(phone string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(phone)
}

// NormalizePostalCode strips spaces. Postal codes are stored in this form.
func NormalizePostalCode(psc string) string {
	return strings.ReplaceAll(psc, " ", "")
}

// MessageFor returns the user-facing message for a failing form field.
func MessageFor(field string) string {
	if msg, ok := messages[field]; ok {
		return msg
	}
	return "Neplatná hodnota pole " + field + "."
}

// New returns a validator with the contact form tags registered. Field errors
// report the `form` tag name (jmeno, email, ...) instead of the Go field name.
func New() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		// tag names are constants, registration cannot fail
		panic(err)
	}
	return v
}

// Register adds the contact form tags to an existing validator.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	rules := map[string]func(string) bool{
		TagName:       ValidName,
		TagEmail:      ValidEmail,
		TagPhone:      ValidPhone,
		TagPostalCode: ValidPostalCode,
	}
	for tag, fn := range rules {
		check := fn
		if err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		}); err != nil {
			return err
		}
	}
	return nil
}
