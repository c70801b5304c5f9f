package portal

import "strings"

const (
	nameField  = "name"
	phoneField = "phone"

	msgNameRequired = "Please enter your full name"
	msgPhoneInvalid = "Please enter a valid 10-digit phone number"

	phoneLength = 10
)

// FormInput holds the visitor's raw form state. Phone is stored already
// normalized (digits only, at most ten) when it arrives through the
// controller, but nothing in this package assumes that.
type FormInput struct {
	Name  string
	Phone string
}

// ValidationResult maps a field name to its error message. An empty result
// means the input is valid. It is recomputed in full on every submit; no
// per-field state carries over between attempts.
type ValidationResult map[string]string

func (v ValidationResult) Valid() bool { return len(v) == 0 }

// Name returns the name field's error, or "".
func (v ValidationResult) Name() string { return v[nameField] }

// Phone returns the phone field's error, or "".
func (v ValidationResult) Phone() string { return v[phoneField] }

// Validate checks the two fields and returns every failure at once so the
// visitor can correct them independently.
func Validate(in FormInput) ValidationResult {
	errs := ValidationResult{}

	if strings.TrimSpace(in.Name) == "" {
		errs[nameField] = msgNameRequired
	}

	digits := DigitsOnly(in.Phone)
	if strings.TrimSpace(in.Phone) == "" || len(digits) != phoneLength {
		errs[phoneField] = msgPhoneInvalid
	}

	return errs
}

// DigitsOnly strips everything but ASCII digits, so formatted numbers like
// "(555) 123-4567" validate on their digit content alone.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone applies the keystroke contract: strip non-digits, then
// truncate to the first ten digits entered.
func NormalizePhone(raw string) string {
	digits := DigitsOnly(raw)
	if len(digits) > phoneLength {
		digits = digits[:phoneLength]
	}
	return digits
}
