package gemini

// generateRequest is the body of a generateContent call.
type generateRequest struct {
	Contents []content `json:"contents"`
}

// content is one conversation turn.
type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

// part is a text fragment within a turn.
type part struct {
	Text string `json:"text,omitempty"`
}

// generateResponse is the subset of the generateContent response we read.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason,omitempty"`
}
