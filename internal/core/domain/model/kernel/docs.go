// Package kernel provides core domain primitives shared by the shop's domain model.
//
// The package includes:
//   - UUID: a value object for aggregate identifiers with validation and comparison
//   - Money: a validated price (amount in minor units plus currency)
//   - Currency: the set of currencies accepted by the shop
//
// These primitives are immutable, enforce their invariants at construction time,
// and are safe for concurrent use.
package kernel
