// Package httpprovider implements the request/response control flow shared
// by every HTTP-backed provider. Adapters supply a Dialect describing their
// endpoint, request shape, success status and text extraction; the Client
// turns that into a provider.Provider that reports typed Results instead of
// errors.
package httpprovider
