package handler

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Context defines the contract for request contexts in the toolkit.
// It extends context.Context with HTTP-specific accessors.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SetValue(key, val any)
}

// baseContext is the default Context implementation. It delegates all
// context.Context methods to the request's context and layers request-scoped
// values on top.
type baseContext struct {
	w http.ResponseWriter
	r *http.Request

	mu     sync.RWMutex
	values map[any]any
}

// NewContext creates the default Context for a request/response pair.
func NewContext(w http.ResponseWriter, r *http.Request) Context {
	return &baseContext{w: w, r: r}
}

func (c *baseContext) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

func (c *baseContext) Done() <-chan struct{} {
	return c.r.Context().Done()
}

func (c *baseContext) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request's context for everything else.
func (c *baseContext) Value(key any) any {
	c.mu.RLock()
	if v, ok := c.values[key]; ok {
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()
	return c.r.Context().Value(key)
}

func (c *baseContext) Request() *http.Request {
	return c.r
}

func (c *baseContext) ResponseWriter() http.ResponseWriter {
	return c.w
}

func (c *baseContext) SetValue(key, val any) {
	c.mu.Lock()
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
	c.mu.Unlock()
}
