// Package product provides the product aggregate: catalog attributes (code,
// name, description, price) together with the single per-product stock counter.
//
// Key business rules:
//   - The available quantity is never negative
//   - Stock changes only through Reserve (order placement) and Release (order return)
//   - A reservation fails with ErrInsufficientStock rather than overselling
//
// The persistence layer enforces the same rules atomically with a conditional
// update; the aggregate encodes them so they are testable without a database.
package product
