package schema

import "fmt"

// Producer computes a type's Schema at a given version, and must be
// pure: it must not consult any value and must return the same tree
// for the same (T, version) in any process.
type Producer func(version uint32) Schema

// Catalog is an optional, introspection-only registry mapping a
// human-assigned name to its schema Producer, for looking up a type's
// schema by name. Nothing in this module registers into a Catalog;
// cmd/versig-inspect reads schemas from streams and does not use one.
type Catalog struct {
	producers map[string]Producer
}

// Register adds name to the catalog. Registering the same name twice
// is a programming error.
func (c *Catalog) Register(name string, producer Producer) error {
	if c.producers == nil {
		c.producers = make(map[string]Producer)
	}
	if _, exists := c.producers[name]; exists {
		return fmt.Errorf("schema: %q is already registered", name)
	}
	c.producers[name] = producer
	return nil
}

// Lookup returns the Schema name produces at version, or false if name
// was never registered.
func (c *Catalog) Lookup(name string, version uint32) (Schema, bool) {
	producer, ok := c.producers[name]
	if !ok {
		return Schema{}, false
	}
	return producer(version), true
}

// Names returns every registered name, in no particular order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.producers))
	for name := range c.producers {
		names = append(names, name)
	}
	return names
}
