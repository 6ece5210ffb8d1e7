// Package catalog holds the salon's immutable service list: what can be
// booked, at what price, and for how long. Entries are fixed at deploy
// time and never mutated by users.
package catalog

// Catalog provides lookup over the seeded service list.
type Catalog struct {
	byID  map[string]Service
	order []string
}

// New builds a Catalog from a service list. Later entries with a
// duplicate ID overwrite earlier ones.
func New(services []Service) *Catalog {
	c := &Catalog{byID: make(map[string]Service, len(services))}
	for _, s := range services {
		if _, ok := c.byID[s.ID]; !ok {
			c.order = append(c.order, s.ID)
		}
		c.byID[s.ID] = s
	}
	return c
}

// Default returns the catalog seeded with the salon's standard offering.
func Default() *Catalog {
	return New(defaultServices)
}

// Get returns the service with the given id, or ErrNotFound.
func (c *Catalog) Get(id string) (Service, error) {
	s, ok := c.byID[id]
	if !ok {
		return Service{}, ErrNotFound
	}
	return s, nil
}

// List returns all services in catalog order.
func (c *Catalog) List() []Service {
	out := make([]Service, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}
