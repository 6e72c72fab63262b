package module

import "sync"

// registry is the process-wide ports lookup used while wiring modules in
// the composition root. Registration happens once at startup; reads may
// come from any goroutine afterwards
type registry struct {
	mu    sync.RWMutex
	ports map[string]any
}

var global = &registry{ports: map[string]any{}}

// Register stores the port set a module exposes under its name.
// Registering the same name twice replaces the earlier entry
func Register(name string, ports any) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.ports[name] = ports
}

// PortsAs looks up the port set for name and asserts it to T
func PortsAs[T any](name string) (T, bool) {
	global.mu.RLock()
	v, registered := global.ports[name]
	global.mu.RUnlock()

	var out T
	if !registered {
		return out, false
	}
	out, ok := v.(T)
	return out, ok
}

// Reset drops every registration. Tests use it between cases
func Reset() {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.ports = map[string]any{}
}
