package rpc

import (
	"sync"
	"time"
)

// ClientPool caches clients by endpoint name so repeated commands against
// the same endpoint reuse one HTTP client. Safe for concurrent use.
type ClientPool struct {
	clients map[string]*Client
	mu      sync.RWMutex
}

func NewClientPool() *ClientPool {
	return &ClientPool{clients: make(map[string]*Client)}
}

// GetOrCreate returns the cached client for name, creating one on first
// use. Double-checked locking keeps the read path cheap.
func (p *ClientPool) GetOrCreate(name, url string, timeout time.Duration, maxRetries int) *Client {
	p.mu.RLock()
	if client, exists := p.clients[name]; exists {
		p.mu.RUnlock()
		return client
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if client, exists := p.clients[name]; exists {
		return client
	}

	client := NewClient(name, url, timeout, maxRetries)
	p.clients[name] = client
	return client
}

// Get returns the cached client for name, or nil.
func (p *ClientPool) Get(name string) *Client {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.clients[name]
}
