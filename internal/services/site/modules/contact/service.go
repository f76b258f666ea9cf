package contact

import (
	"log"
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// Input is one contact form submission as entered.
type Input struct {
	Name   string
	Email  string
	Body   string
	Locale string
}

type service struct {
	logger *log.Logger
}

func newService(logger *log.Logger) service {
	return service{logger: logger}
}

// validate returns catalog message keys for every invalid field, keyed by
// the form field name. A nil result means the input is acceptable.
func validate(input Input) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		errs["name"] = "errors.contact_name_required"
	}
	if !validEmail(input.Email) {
		errs["email"] = "errors.contact_email_invalid"
	}
	if strings.TrimSpace(input.Body) == "" {
		errs["message"] = "errors.contact_message_required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// validEmail accepts bare RFC 5322 addresses. Display-name forms are
// rejected so the logged address is always directly usable.
func validEmail(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	addr, err := mail.ParseAddress(trimmed)
	return err == nil && addr.Address == trimmed
}

// submit dispatches one validated submission. Delivery is simulated: the
// message is logged under a correlation ID and never leaves the process.
func (s service) submit(input Input) {
	if s.logger == nil {
		return
	}
	s.logger.Printf("contact message received id=%s locale=%s name=%q email=%q body_bytes=%d",
		uuid.NewString(),
		strings.TrimSpace(input.Locale),
		strings.TrimSpace(input.Name),
		strings.TrimSpace(input.Email),
		len(strings.TrimSpace(input.Body)),
	)
}
