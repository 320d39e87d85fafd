// Package shopping implements the shopping list module: owner-scoped listing
// and deletion, application of the merge operations the reconcile engine
// plans, and PDF export with optional archival to object storage.
package shopping
