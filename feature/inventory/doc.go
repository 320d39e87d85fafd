// Package inventory implements the perishable inventory module: owner-scoped
// CRUD, category/name filtering, the expiration status summary and the
// calendar feed. It also provides the inventory snapshot the reconcile
// engine decides against.
package inventory
