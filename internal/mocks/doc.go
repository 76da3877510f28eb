// Package mocks provides hand-written mock implementations of the store
// and service interfaces for use in unit tests. Behavior is customized by
// assigning the function fields; unset fields fall back to a simple
// in-memory default.
package mocks
