// Package service contains the storefront use cases: the catalog and the
// order lifecycle. Authentication lives in the auth subpackage.
//
// Services receive their stores through constructor injection and depend only
// on the interfaces in internal/store, never on a concrete backend. Expected
// failures come back as the sentinel errors of the domain and store packages
// (wrapped with %w), so the API layer can map them with errors.Is. Anything
// unexpected is wrapped in a *ServiceError naming the operation.
package service
