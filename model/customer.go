package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// emailPattern is deliberately narrow: one local part, one domain segment and a
// literal .com suffix. Addresses like name@host.org are rejected on purpose.
var emailPattern = regexp.MustCompile(`^(.+)@(.+)\.com$`)

var ErrInvalidEmail = errors.New("invalid email, expected format name@domain.com")

// Customer is immutable after creation. Identity is the email address.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func NewCustomer(email, firstName, lastName string) (*Customer, error) {
	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return &Customer{
		Email:     strings.ToLower(email),
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

func (c *Customer) String() string {
	return fmt.Sprintf("%s %s <%s>", c.FirstName, c.LastName, c.Email)
}
