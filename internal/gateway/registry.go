package gateway

import "sync"

var (
	registryMu sync.RWMutex
	registry   = map[string]Gateway{}
)

// Register makes a constructed adapter available under a provider
// name. Re-registering a name replaces the previous adapter.
func Register(name string, g Gateway) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = g
}

// Get resolves a previously registered adapter by provider name.
func Get(name string) (Gateway, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	g, ok := registry[name]
	return g, ok
}
