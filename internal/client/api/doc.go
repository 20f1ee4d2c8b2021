// Package api implements the request gateway: the single HTTP pipeline every
// remote call flows through, plus the typed DTO layer that maps backend
// response shapes into client models.
package api

// Compile-time check that the gateway satisfies the full API surface.
var _ Client = (*HTTPClient)(nil)
