// Package mocks provides hand-written test doubles for the store and
// service interfaces. The store mocks are small in-memory implementations
// that preserve the real semantics tests care about: username uniqueness and
// owner scoping.
package mocks
