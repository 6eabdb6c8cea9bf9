package prompt

import (
	"lucid-schemas/internal/common/validation"
	"lucid-schemas/pkg/schema"
)

const category = "prompt"

func init() {
	schema.MustRegister(
		func() schema.Record { return &ObjectID{} },
		func() schema.Record { return &PromptSummarizer{} },
		func() schema.Record { return &StringResponse{} },
		func() schema.Record { return &Explainer{} },
		func() schema.Record { return &Message{} },
		func() schema.Record { return &GeneralRequest{} },
		func() schema.Record { return &PromptUpdate{} },
		func() schema.Record { return &PromptFilter{} },
		func() schema.Record { return &Orchestrator{} },
		func() schema.Record { return &VoiceRequest{} },
		func() schema.Record { return &JobRequest{} },
	)
}

func text(description string) validation.Property {
	return validation.Property{Type: "string", Description: description}
}

func optionalText(description string) validation.Property {
	return validation.Property{Type: "string", Nullable: true, Description: description}
}

func messageProperties() map[string]validation.Property {
	return map[string]validation.Property{
		"role":    text("The author of the message."),
		"content": text("The message text."),
	}
}

func definition(name, description string, tags []string, s validation.JSONSchema) schema.Definition {
	return schema.Definition{
		Name:        name,
		Category:    category,
		Description: description,
		Mode:        schema.ModeIgnore,
		Schema:      s,
		Tags:        tags,
	}
}

func (ObjectID) Definition() schema.Definition {
	return definition("object_id", "A single retrieved object id.", []string{"response"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"id": {Description: "The ID of the retrieved object."},
		}})
}

func (PromptSummarizer) Definition() schema.Definition {
	return definition("prompt_summarizer", "Input of the prompt summarizer.", []string{"input"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"response":         {Description: "The response that is received by the prompt."},
			"user_input":       optionalText("The user input to be used in the prompt."),
			"prompt_type":      optionalText("The type of prompt that is being summarized."),
			"prompt_operation": optionalText("The operation the prompt is performing."),
		}})
}

func (StringResponse) Definition() schema.Definition {
	return definition("string_response", "A plain text answer.", []string{"response"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"response": optionalText("A string response for the relevant object."),
		}})
}

func (Explainer) Definition() schema.Definition {
	transaction := validation.Property{
		Type: "object",
		Properties: map[string]validation.Property{
			"date":   optionalText("The date on which the transaction transpired."),
			"name":   optionalText("The name of the transaction."),
			"amount": {Description: "The transaction's amount."},
		},
	}
	cell := validation.Property{
		Type: "object",
		Properties: map[string]validation.Property{
			"date":        optionalText("The date of the formula."),
			"name":        optionalText("The name of the formula."),
			"total_value": {Description: "The total value of the formula."},
			"transactions": {
				Type:        "array",
				Nullable:    true,
				Description: "The transactions of the formula.",
				Items:       &transaction,
			},
		},
	}
	return definition("explainer", "Cells to explain, with their transactions.", []string{"input"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"input": {Type: "array", Nullable: true, Description: "The input of the explainer.", Items: &cell},
		}})
}

func (Message) Definition() schema.Definition {
	return definition("message", "One turn of a chat conversation.", []string{"input"},
		validation.JSONSchema{Required: []string{"role", "content"}, Properties: messageProperties()})
}

func (GeneralRequest) Definition() schema.Definition {
	return definition("general_request", "A free-form completion request.", []string{"input"},
		validation.JSONSchema{
			Required: []string{"input"},
			Properties: map[string]validation.Property{
				"input":  text("The user's request."),
				"system": optionalText("The system prompt."),
				"messages": {
					Type:        "array",
					Nullable:    true,
					Description: "Prior turns of the conversation.",
					Items: &validation.Property{
						Type:       "object",
						Required:   []string{"role", "content"},
						Properties: messageProperties(),
					},
				},
				"engine": optionalText("The model to run the request on."),
			},
		})
}

func (PromptUpdate) Definition() schema.Definition {
	return definition("prompt_update", "Replacement text for a stored prompt.", []string{"input"},
		validation.JSONSchema{
			Required: []string{"prompt"},
			Properties: map[string]validation.Property{
				"prompt": text("The new prompt text."),
				"engine": optionalText("The model the prompt runs on."),
			},
		})
}

func (PromptFilter) Definition() schema.Definition {
	return definition("prompt_filter", "Selects a stored prompt by slug.", []string{"input"},
		validation.JSONSchema{
			Required:   []string{"slug"},
			Properties: map[string]validation.Property{"slug": text("The prompt slug.")},
		})
}

func (Orchestrator) Definition() schema.Definition {
	return definition("orchestrator", "Routes free text to a conversation branch.", []string{"input"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"branch_id": {Description: "The branch to continue."},
			"freetext":  optionalText("The user's message."),
		}})
}

func (VoiceRequest) Definition() schema.Definition {
	return definition("voice_request", "Speech synthesis of free text.", []string{"input"},
		validation.JSONSchema{Properties: map[string]validation.Property{
			"voice_id": {Type: "string", Nullable: true, Description: "The voice to speak with.", Default: DefaultVoiceID},
			"freetext": optionalText("The text to speak."),
		}})
}

func (JobRequest) Definition() schema.Definition {
	return definition("job_request", "Job role suggestions for a sector.", []string{"input"},
		validation.JSONSchema{
			Required: []string{"sector", "letters"},
			Properties: map[string]validation.Property{
				"sector":  text("The sector to suggest roles for."),
				"letters": text("The letters the role title starts with."),
			},
		})
}
