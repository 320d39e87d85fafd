// Package expiry classifies inventory expiration dates into display tiers.
//
// The classification is shared between the inventory views (status coloring,
// calendar events, status breakdown counts) and the reconcile engine, which
// uses the Expired tier as a hard blocker when making a recipe.
//
// # Tiers
//
//   - Expired: the expiration date is today or in the past.
//   - ExpiringSoon: the expiration date is within the next 7 days.
//   - Good: anything further out.
//
// Dates are truncated to the day before comparison, so an item expiring
// "today" is already Expired regardless of the time of day.
package expiry
