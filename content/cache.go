package content

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cached memoizes Parse keyed by the raw markup. Parse is pure, so a
// hit is always exact, and the shared trees are immutable by contract.
type Cached struct {
	trees *cache.Cache
}

// WithCache returns a parser whose Parse memoizes trees for ttl.
func WithCache(ttl time.Duration) *Cached {
	return &Cached{trees: cache.New(ttl, ttl)}
}

// Parse behaves exactly like the package level Parse. Failures are never
// cached; only a parsed tree is.
func (c *Cached) Parse(markup string) (*Tree, error) {
	if tree, ok := c.trees.Get(markup); ok {
		return tree.(*Tree), nil
	}
	tree, err := Parse(markup)
	if err != nil {
		return nil, err
	}
	c.trees.SetDefault(markup, tree)
	return tree, nil
}

// Count reports how many trees are currently cached.
func (c *Cached) Count() int {
	return c.trees.ItemCount()
}

// Flush drops every cached tree.
func (c *Cached) Flush() {
	c.trees.Flush()
}
