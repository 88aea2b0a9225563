// Package domain contains the core entities of the task tracker: users and
// the tasks they own. Entities validate their own field-level invariants;
// cross-entity rules (username uniqueness, ownership scoping) live in the
// store layer where the database can enforce them.
package domain
