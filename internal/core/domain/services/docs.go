// Package services provides domain services that coordinate several aggregates and
// read models of the marketplace.
//
// The package includes:
//   - OrderBuilder: authorizes a buyer, reserves stock for every requested line and
//     assembles the Order aggregate
//   - SellerPolicy: decides whether a seller may change the status of an order
//
// Services receive repositories bound to the caller's unit of work, so every read
// and stock mutation they perform belongs to the caller's transaction.
package services
