// Package order provides the Order aggregate of the marketplace: its line items,
// its total and the status machine that governs its lifecycle.
//
// The package includes:
//   - Order: the aggregate root created from reserved line items
//   - LineItem: a product, its unit price at reservation time and a quantity
//   - Status: the fixed transition table PENDING -> PROCESSING -> SHIPPED -> DELIVERED
//     with CANCELLED reachable from the first two states
//   - Domain events recorded by the aggregate and relayed through the outbox
//
// Key business rules:
//   - An order has at least one line item and its total never changes after creation
//   - DELIVERED and CANCELLED are terminal
//   - Self-transitions are rejected like any other illegal transition
package order
