// Package engine implements the provider fallback chain. The Engine tries
// providers strictly in configured order and stops at the first one that
// answers; failures are recorded and the next provider is tried. The Engine
// implements transport.QuestionSolver, bridging the protocol adapters to
// the providers.
package engine
