package customersvc

import (
	"errors"

	"hotelbooking/model"
	customerrepo "hotelbooking/repository/customer"
)

var ErrEmailTaken = errors.New("email already registered")

type Service interface {
	// Register validates the email and creates the customer account.
	Register(email, firstName, lastName string) (*model.Customer, error)
	// Get returns (nil, nil) when no customer has that email.
	Get(email string) (*model.Customer, error)
	All() []*model.Customer
}

type service struct{ r customerrepo.Repo }

func New(r customerrepo.Repo) Service { return &service{r: r} }

func (s *service) Register(email, firstName, lastName string) (*model.Customer, error) {
	c, err := model.NewCustomer(email, firstName, lastName)
	if err != nil {
		return nil, err
	}
	if !s.r.Add(c) {
		return nil, ErrEmailTaken
	}
	return c, nil
}

func (s *service) Get(email string) (*model.Customer, error) {
	if email == "" {
		return nil, model.ErrInvalidEmail
	}
	return s.r.ByEmail(email), nil
}

func (s *service) All() []*model.Customer { return s.r.All() }
