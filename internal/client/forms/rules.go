// Package forms implements declarative per-field validation for the client's
// input forms. A field declares an ordered rule list; the first failing rule
// reports a field-scoped message and any failure blocks submission, so
// invalid forms never reach the network.
package forms

import (
	"fmt"
	"regexp"
	"strings"
)

// Values is a submitted form: field name to raw input.
type Values map[string]string

// Rule checks one field. The whole form is passed so rules like EqualField
// can re-read a sibling's current value at validation time.
type Rule func(value string, form Values) error

// Field pairs a name with its ordered rules.
type Field struct {
	Name  string
	Rules []Rule
}

// Errors maps field names to the first failing rule's message.
type Errors map[string]string

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, field+": "+msg)
	}
	return strings.Join(parts, "; ")
}

// Validate evaluates every field. A nil return means the form may be
// submitted.
func Validate(form Values, fields []Field) Errors {
	errs := Errors{}
	for _, f := range fields {
		for _, rule := range f.Rules {
			if err := rule(form[f.Name], form); err != nil {
				errs[f.Name] = err.Error()
				break
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// emailPattern is the usual pragmatic check: one @, no spaces, a dot in the
// domain part. Full RFC 5322 parsing buys nothing here since the server
// validates again.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Required fails on input that is empty after trimming.
func Required(msg string) Rule {
	return func(value string, _ Values) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// Email fails on input that does not look like an email address.
func Email(msg string) Rule {
	return func(value string, _ Values) error {
		if !emailPattern.MatchString(value) {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// MinLen fails on input shorter than n runes.
func MinLen(n int, msg string) Rule {
	return func(value string, _ Values) error {
		if len([]rune(value)) < n {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// EqualField fails unless the value equals the named sibling's current value.
func EqualField(other string, msg string) Rule {
	return func(value string, form Values) error {
		if value != form[other] {
			return fmt.Errorf("%s", msg)
		}
		return nil
	}
}

// ClampInt forces v into [lo, hi]. Numeric character-sheet fields use it at
// input time; out-of-range entry never survives to submission.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Inclusive ranges for the numeric character-sheet fields.
var (
	AbilityRange     = [2]int{1, 30}
	LevelRange       = [2]int{1, 20}
	HPRange          = [2]int{0, 1000}
	ACRange          = [2]int{1, 30}
	SpeedRange       = [2]int{0, 100}
	ProficiencyRange = [2]int{0, 10}
)

// Canned field sets for the auth forms.

// LoginFields validates the login form.
func LoginFields() []Field {
	return []Field{
		{Name: "email", Rules: []Rule{
			Required("please enter your email"),
			Email("please enter a valid email address"),
		}},
		{Name: "password", Rules: []Rule{
			Required("please enter your password"),
		}},
	}
}

// RegisterFields validates the registration form.
func RegisterFields() []Field {
	return []Field{
		{Name: "email", Rules: []Rule{
			Required("please enter your email"),
			Email("please enter a valid email address"),
		}},
		{Name: "nickname", Rules: []Rule{
			Required("please enter a nickname"),
		}},
		{Name: "password", Rules: []Rule{
			Required("please enter your password"),
			MinLen(6, "password must be at least 6 characters"),
		}},
		{Name: "confirmPassword", Rules: []Rule{
			Required("please confirm your password"),
			EqualField("password", "passwords do not match"),
		}},
	}
}
