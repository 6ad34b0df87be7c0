// Package provider defines the capability every math-answering backend
// implements. A Provider makes one attempt at a question and reports a
// Result: either the extracted answer text or a typed Failure. Backend
// protocol details (URLs, request bodies, response shapes) stay inside the
// adapter packages, keeping them invisible to the engine.
package provider
