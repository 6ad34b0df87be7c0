// Package api defines the wire types of the mathsolver HTTP and MCP
// surfaces: the solve request and response, the flat error envelope, and
// the typed APIError used internally to pick an HTTP status.
//
// The package has no external dependencies and performs no I/O.
package api
