package bramble

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// widthCache maps exact text content to its measured width.
type widthCache interface {
	get(text string) (float64, bool)
	put(text string, width float64)
	len() int
}

// mapCache never evicts.
type mapCache map[string]float64

func (c mapCache) get(text string) (float64, bool) {
	w, ok := c[text]
	return w, ok
}

func (c mapCache) put(text string, width float64) { c[text] = width }

func (c mapCache) len() int { return len(c) }

// lruCache keeps the most recently used limit entries.
type lruCache struct {
	c *lru.Cache[string, float64]
}

func (c lruCache) get(text string) (float64, bool) { return c.c.Get(text) }

func (c lruCache) put(text string, width float64) { c.c.Add(text, width) }

func (c lruCache) len() int { return c.c.Len() }

// newWidthCache returns an unbounded cache for limit <= 0, otherwise an LRU
// holding at most limit entries.
func newWidthCache(limit int) (widthCache, error) {
	if limit <= 0 {
		return mapCache{}, nil
	}
	c, err := lru.New[string, float64](limit)
	if err != nil {
		return nil, err
	}
	return lruCache{c: c}, nil
}
