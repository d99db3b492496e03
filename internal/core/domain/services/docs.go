// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the linen delivery system. It implements
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - LinenClassifier: a pure function deciding which line items are pickup-eligible linen
//   - PickupReconciler: the engine deriving outstanding dirty-linen debt per property
//     and projecting it onto the next eligible orders
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
