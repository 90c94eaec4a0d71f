package roomrepo

import (
	"sync"

	"hotelbooking/model"
)

type Repo interface {
	// Add inserts a room. Reports false when a room with that number exists.
	Add(room *model.Room) bool
	// Get returns the room or nil when absent.
	Get(number string) *model.Room
	// List returns all rooms in insertion order.
	List() []*model.Room
}

// repo is the in-memory catalog. The order slice keeps listing deterministic;
// map iteration order is randomized per run.
type repo struct {
	mu    sync.RWMutex
	byNum map[string]*model.Room
	order []string
}

func New() Repo {
	return &repo{byNum: make(map[string]*model.Room)}
}

func (r *repo) Add(room *model.Room) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byNum[room.Number]; exists {
		return false
	}
	r.byNum[room.Number] = room
	r.order = append(r.order, room.Number)
	return true
}

func (r *repo) Get(number string) *model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byNum[number]
}

func (r *repo) List() []*model.Room {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Room, 0, len(r.order))
	for _, num := range r.order {
		out = append(out, r.byNum[num])
	}
	return out
}
