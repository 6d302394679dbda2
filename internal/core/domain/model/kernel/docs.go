// Package kernel provides the shared value objects of the order domain.
//
// The package includes:
//   - UUID: identifier of every entity (orders, products, users, sellers, carts, addresses)
//   - Money: non-negative monetary amount backed by shopspring/decimal
//   - Identity: the stable identity of an authenticated caller
//
// The zero value of each type is invalid; use the constructors. All types are
// immutable and safe for concurrent use.
package kernel
