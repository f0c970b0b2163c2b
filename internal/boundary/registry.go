package boundary

import "sync"

// Registry records the buffers handed to foreign callers so that release can
// reject pointers it never issued and pointers released twice.
type Registry struct {
	mu   sync.Mutex
	live map[uintptr]int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{live: map[uintptr]int{}}
}

// Track records a buffer of size bytes at ptr.
func (r *Registry) Track(ptr uintptr, size int) {
	if ptr == 0 {
		return
	}
	r.mu.Lock()
	r.live[ptr] = size
	r.mu.Unlock()
}

// Release forgets ptr and returns its size. ok is false when ptr is not a live
// handle, in which case the caller must not free it.
func (r *Registry) Release(ptr uintptr) (size int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	size, ok = r.live[ptr]
	if ok {
		delete(r.live, ptr)
	}
	return size, ok
}

// Outstanding returns the number of live handles.
func (r *Registry) Outstanding() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}
