// Package properties provides an in-memory, concurrency-safe property table
// that can be seeded from a YAML file and used as an override source in place
// of the process environment.
package properties
