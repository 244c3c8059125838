package pbconfig

import "os"

// Source is a read-only key/value store consulted for overrides.
type Source interface {
	Lookup(key string) (string, bool)
}

// LookupFunc adapts a plain lookup function to a Source.
type LookupFunc func(key string) (string, bool)

// Lookup calls f.
func (f LookupFunc) Lookup(key string) (string, bool) {
	return f(key)
}

// EnvSource reads overrides from the process environment.
func EnvSource() Source {
	return LookupFunc(os.LookupEnv)
}

// MapSource serves overrides from a fixed map. The map is read, never written.
type MapSource map[string]string

// Lookup returns the value stored under key.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
