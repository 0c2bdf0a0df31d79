// Package diagnostic provides structured findings for introspection
// document validation: error and warning records with stable codes,
// the type and field they relate to, and aggregation into a single error.
package diagnostic
