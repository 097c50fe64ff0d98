// Package catalog holds the immutable value objects an order is built from.
//
// A Category names a tax rate; a Product has a unique name, a unit price and a
// Category. Both are created through validating constructors and never change.
package catalog
