// Package domain contains the core business entities, value objects, and
// domain logic of the storefront: users, catalog products, and orders with
// their status machine. It is independent of any specific infrastructure or
// delivery mechanism.
package domain
