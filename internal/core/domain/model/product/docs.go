// Package product models catalog products as far as ordering needs them: the owning
// seller, the current price and the stock that orders reserve from.
package product
