// pkg/contracts/prompt/models.go
package prompt

import "lucid-schemas/pkg/schema"

// DefaultVoiceID is the voice used when a voice request names none.
const DefaultVoiceID = "iP95p4xoKVk53GoZ742B"

// ObjectID carries a single retrieved id, e.g. from the formula selector.
type ObjectID struct {
	ID *schema.Int `json:"id,omitempty"`
}

// PromptSummarizer is the input of the prompt summarizer.
type PromptSummarizer struct {
	Response        interface{} `json:"response,omitempty"`
	UserInput       *string     `json:"user_input,omitempty"`
	PromptType      *string     `json:"prompt_type,omitempty"`
	PromptOperation *string     `json:"prompt_operation,omitempty"`
}

// StringResponse wraps a plain text answer.
type StringResponse struct {
	Response *string `json:"response,omitempty"`
}

// Text returns the response or "" when absent.
func (r StringResponse) Text() string {
	if r.Response == nil {
		return ""
	}
	return *r.Response
}

// Transaction is one entry behind an explained cell.
type Transaction struct {
	Date   *string       `json:"date,omitempty"`
	Name   *string       `json:"name,omitempty"`
	Amount *schema.Float `json:"amount,omitempty"`
}

// Cell is a formula value on a date together with its transactions.
type Cell struct {
	Date         *string       `json:"date,omitempty"`
	Name         *string       `json:"name,omitempty"`
	TotalValue   *schema.Float `json:"total_value,omitempty"`
	Transactions []Transaction `json:"transactions"`
}

// TransactionSum adds up the amounts of all transactions.
func (c Cell) TransactionSum() float64 {
	sum := 0.0
	for _, tx := range c.Transactions {
		if tx.Amount != nil {
			sum += float64(*tx.Amount)
		}
	}
	return sum
}

// Explainer is the input of the cell explainer.
type Explainer struct {
	Input []Cell `json:"input"`
}

// Message is one turn of a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GeneralRequest is a free-form completion request.
type GeneralRequest struct {
	Input    string    `json:"input"`
	System   *string   `json:"system,omitempty"`
	Messages []Message `json:"messages"`
	Engine   *string   `json:"engine,omitempty"`
}

// Conversation returns the system prompt, the prior messages and the input
// as a user turn, in that order.
func (r GeneralRequest) Conversation() []Message {
	out := make([]Message, 0, len(r.Messages)+2)
	if r.System != nil && *r.System != "" {
		out = append(out, Message{Role: "system", Content: *r.System})
	}
	out = append(out, r.Messages...)
	return append(out, Message{Role: "user", Content: r.Input})
}

// PromptUpdate replaces a stored prompt.
type PromptUpdate struct {
	Prompt string  `json:"prompt"`
	Engine *string `json:"engine,omitempty"`
}

// PromptFilter selects a stored prompt by slug.
type PromptFilter struct {
	Slug string `json:"slug" validate:"required"`
}

// Orchestrator routes free text to a conversation branch.
type Orchestrator struct {
	BranchID *schema.Int `json:"branch_id,omitempty"`
	Freetext *string     `json:"freetext,omitempty"`
}

// VoiceRequest asks for speech synthesis of free text.
type VoiceRequest struct {
	VoiceID  string  `json:"voice_id"`
	Freetext *string `json:"freetext,omitempty"`
}

// JobRequest asks for job role suggestions.
type JobRequest struct {
	Sector  string `json:"sector"`
	Letters string `json:"letters"`
}

func (*ObjectID) Normalize(*schema.Normalizer) error         { return nil }
func (*PromptSummarizer) Normalize(*schema.Normalizer) error { return nil }
func (*StringResponse) Normalize(*schema.Normalizer) error   { return nil }
func (*Explainer) Normalize(*schema.Normalizer) error        { return nil }
func (*Message) Normalize(*schema.Normalizer) error          { return nil }
func (*GeneralRequest) Normalize(*schema.Normalizer) error   { return nil }
func (*PromptUpdate) Normalize(*schema.Normalizer) error     { return nil }
func (*PromptFilter) Normalize(*schema.Normalizer) error     { return nil }
func (*Orchestrator) Normalize(*schema.Normalizer) error     { return nil }
func (*JobRequest) Normalize(*schema.Normalizer) error       { return nil }

func (v *VoiceRequest) Normalize(*schema.Normalizer) error {
	if v.VoiceID == "" {
		v.VoiceID = DefaultVoiceID
	}
	return nil
}
