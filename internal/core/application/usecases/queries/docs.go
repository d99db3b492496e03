// Package queries contains read-only operations producing the filtered,
// sorted views couriers consume: today's available orders, in-flight orders,
// delivered orders, and the freshly recomputed pickup projection.
//
// Query handlers read the database directly (raw SQL over GORM) and never
// mutate state. The eligibility filter they apply to "available" orders is
// the same predicate the reconciliation engine uses, which is what keeps the
// two from diverging.
package queries
