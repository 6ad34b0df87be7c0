// Package transport defines the solver contract between the protocol
// adapters and the fallback engine, plus the middleware chain wrapped
// around it.
//
// # Handler Interface
//
// QuestionSolver turns a validated SolveRequest into a SolveResponse or an
// error. Adapters (HTTP in transport/http, MCP in transport/mcp) decode
// requests, call the solver and encode the result; they never see
// providers.
//
// # Middleware
//
// The middleware chain wraps QuestionSolver with cross-cutting concerns.
// Built-in middleware provides panic recovery, request ID assignment
// (X-Request-ID, google/uuid) and structured logging via log/slog.
//
// # Errors
//
// Errors are mapped to HTTP statuses with HTTPStatusFromError and written
// in the flat {"error": message} form. Anything that is not an
// *api.APIError is reported with the generic failure message; internal
// details are logged, never returned.
package transport
