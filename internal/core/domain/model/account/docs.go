// Package account holds the read models of entities owned by other services that
// the ordering core consults: buyers, sellers, shipping addresses and carts.
// They carry only the fields ordering decisions depend on.
package account
