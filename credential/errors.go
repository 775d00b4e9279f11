package credential

import "fmt"

type (
	MissingField struct {
		Name string
	}

	InvalidField struct {
		Name   string
		Reason string
	}

	UnknownScheme struct {
		Scheme string
	}
)

func (m MissingField) Error() string {
	return fmt.Sprintf("credential field %v is missing or empty", m.Name)
}

func (i InvalidField) Error() string {
	return fmt.Sprintf("credential field %v is invalid: %v", i.Name, i.Reason)
}

func (u UnknownScheme) Error() string {
	return fmt.Sprintf("password scheme %q is not supported", u.Scheme)
}
