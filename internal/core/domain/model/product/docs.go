// Package product provides the catalog entry aggregate. Orders snapshot
// product fields at checkout; the only interaction after that is the stock
// decrement performed in the same transaction as order creation.
package product
