// Package kernel provides the shared value objects of the bookshop domain model.
//
// The package includes:
//   - UUID: identifier of every entity (members, items, orders, order lines, deliveries)
//   - Address: an immutable postal address used by members and deliveries
//   - Price: a non-negative decimal money amount used for item and order line prices
//
// All values are immutable. They are constructed through factory functions that
// validate their input, and each exposes Validate so that zero values created by
// a struct literal are rejected wherever a constructed value is required.
package kernel
