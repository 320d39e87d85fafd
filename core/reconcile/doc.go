// Package reconcile implements the engine that matches recipe ingredient
// demand against on-hand inventory and shopping-list supply.
//
// The engine is deliberately pure: every function is a function of its
// explicit inputs (a recipe, point-in-time snapshots of the owner's
// collections, and the current date) and produces a decision, never a side
// effect. Persistence of the resulting mutations is the caller's job, which
// keeps the decision logic testable without a database.
//
// # Components
//
// 1. Matcher: resolves an ingredient reference to at most one record by
// normalized name + unit equality. Two records with the same name but
// different units are distinct entities; no unit conversion is performed.
//
// 2. Consumption planner: decides whether a recipe can be cooked from the
// inventory snapshot. Missing or expired ingredients block the whole recipe
// and no mutation is planned. Otherwise each ingredient yields either a
// quantity update or, when the remainder drops to zero or below, a delete.
//
// 3. Shortfall merger: computes the uncovered quantity per ingredient and
// merges it into the shopping list, adding to an existing line or inserting
// a new one. Repeated calls are additive on purpose: merging the same recipe
// twice models the intent to cook it twice.
//
// # Snapshots
//
// Decisions are made against a fetched-once snapshot. A concurrent edit
// between the decision and the apply phase is not detected here; callers that
// need that guarantee apply the plan transactionally with optimistic checks
// (see the recipes feature service).
package reconcile
