// Package planner implements the meal planner module: scheduling a recipe on
// a calendar day, listing the schedule, and unscheduling.
package planner
