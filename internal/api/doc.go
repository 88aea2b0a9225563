// Package api provides the HTTP handlers for the task tracker's JSON API:
// registration, login, and the owner-scoped task CRUD endpoints. Handlers
// depend on the store interfaces and services injected at construction; the
// auth middleware in the middleware subpackage gates the task routes.
package api
