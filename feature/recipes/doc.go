// Package recipes implements the recipe module and drives the reconcile
// engine: CRUD over recipes with ordered ingredients and steps, the
// make-recipe consumption flow, and the shortfall merge into the shopping
// list. All engine decisions run on explicit point-in-time snapshots.
package recipes
