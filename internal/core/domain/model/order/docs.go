// Package order provides the order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding the customer reference, the frozen set
//     of lines, and the lifecycle status
//   - Line: a product reference plus the quantity reserved at placement time
//   - Status: the state machine Created -> Delivered -> Returned, with
//     Created -> Canceled as the only other legal transition
//
// Key business rules:
//   - An order holds reserved stock for its lines while in Created or Delivered
//   - Canceled and Returned are terminal states
//   - Returning an order is the only transition that releases stock; canceling
//     does not restock
//   - Line quantities never change after the order is placed
package order
