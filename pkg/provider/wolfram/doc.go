// Package wolfram implements provider.Provider for the WolframAlpha Short
// Answers API. It is the computational backend of the chain: answers are
// plain text and only HTTP 200 counts as success (501 means the engine
// could not interpret the question).
package wolfram
