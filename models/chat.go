package models

// ChatRequest is a prompt forwarded to the generative-language API.
type ChatRequest struct {
	Prompt string `json:"prompt"`

	// APIKey overrides the server-side credential when set.
	APIKey string `json:"api_key,omitempty"`

	// Model names the model to use; empty selects the primary model.
	Model string `json:"model,omitempty"`
}

// ChatReply is the text produced by the model.
type ChatReply struct {
	Text string `json:"text"`

	// Model is the model that actually produced the reply.
	Model string `json:"model"`

	// FellBack is true when the primary model was missing and the fallback
	// model answered instead.
	FellBack bool `json:"fell_back"`
}

// ChatModels lists the selectable models.
type ChatModels struct {
	Primary  string   `json:"primary"`
	Fallback string   `json:"fallback"`
	Models   []string `json:"models"`
}
