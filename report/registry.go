package report

// Registry maps reporter names to instances, preserving registration
// order for listings.
type Registry struct {
	names     []string
	reporters map[string]Reporter
}

// NewRegistry creates an empty reporter registry.
func NewRegistry() *Registry {
	return &Registry{reporters: make(map[string]Reporter)}
}

// Register binds a name to a reporter. A second registration for the
// same name replaces the first.
func (r *Registry) Register(name string, rep Reporter) {
	if _, ok := r.reporters[name]; !ok {
		r.names = append(r.names, name)
	}
	r.reporters[name] = rep
}

// Get returns the reporter registered under name.
func (r *Registry) Get(name string) (Reporter, bool) {
	rep, ok := r.reporters[name]
	return rep, ok
}

// Names returns the registered reporter names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}
