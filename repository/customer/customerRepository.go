package customerrepo

import (
	"strings"
	"sync"

	"hotelbooking/model"
)

type Repo interface {
	// Add inserts a customer. Reports false when the email is already registered.
	Add(c *model.Customer) bool
	// ByEmail returns the customer or nil when absent. Lookup is
	// case-insensitive; identity is the lowercased address.
	ByEmail(email string) *model.Customer
	// All returns every customer in registration order.
	All() []*model.Customer
}

type repo struct {
	mu      sync.RWMutex
	byEmail map[string]*model.Customer
	order   []string
}

func New() Repo {
	return &repo{byEmail: make(map[string]*model.Customer)}
}

func (r *repo) Add(c *model.Customer) bool {
	email := strings.ToLower(c.Email)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byEmail[email]; exists {
		return false
	}
	r.byEmail[email] = c
	r.order = append(r.order, email)
	return true
}

func (r *repo) ByEmail(email string) *model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byEmail[strings.ToLower(email)]
}

func (r *repo) All() []*model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Customer, 0, len(r.order))
	for _, email := range r.order {
		out = append(out, r.byEmail[email])
	}
	return out
}
