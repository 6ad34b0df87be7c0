// Package gemini implements provider.Provider for the Google Gemini
// generateContent API. It is the generative-text backend of the chain and
// asks the model for a step-by-step solution.
package gemini
