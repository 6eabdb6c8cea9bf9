package prompt

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lucid-schemas/internal/common/errors"
	"lucid-schemas/internal/common/logger"
	"lucid-schemas/pkg/schema"
)

func newDecoder(t *testing.T) *schema.Decoder {
	return schema.NewDecoder(schema.WithLogger(logger.NewTestLogger(t)))
}

// ==========================
// Required Member Tests
// ==========================

func TestRequiredMembers(t *testing.T) {
	tests := []struct {
		name    string
		record  string
		payload string
		code    errors.ErrorCode
	}{
		{name: "message without content", record: "message", payload: `{"role":"user"}`, code: errors.ErrCodeMissingField},
		{name: "general request without input", record: "general_request", payload: `{"system":"be brief"}`, code: errors.ErrCodeMissingField},
		{name: "nested message without role", record: "general_request", payload: `{"input":"hi","messages":[{"content":"x"}]}`, code: errors.ErrCodeMissingField},
		{name: "prompt update without prompt", record: "prompt_update", payload: `{"engine":"gpt"}`, code: errors.ErrCodeMissingField},
		{name: "prompt filter without slug", record: "prompt_filter", payload: `{}`, code: errors.ErrCodeMissingField},
		{name: "empty slug", record: "prompt_filter", payload: `{"slug":""}`, code: errors.ErrCodeConstraintViolation},
		{name: "job request without letters", record: "job_request", payload: `{"sector":"Fintech"}`, code: errors.ErrCodeMissingField},
		{name: "job request wrong type", record: "job_request", payload: `{"sector":"Fintech","letters":7}`, code: errors.ErrCodeMalformedInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newDecoder(t).DecodeNamed(context.Background(), tt.record, []byte(tt.payload))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestGeneralRequest_Conversation(t *testing.T) {
	got, err := schema.Decode[GeneralRequest](context.Background(), newDecoder(t), []byte(`{
		"input": "And next year?",
		"system": "You are a CFO.",
		"messages": [{"role":"user","content":"Revenue this year?"},{"role":"assistant","content":"1M"}],
		"engine": "gpt-4o"
	}`))
	require.NoError(t, err)

	assert.Equal(t, []Message{
		{Role: "system", Content: "You are a CFO."},
		{Role: "user", Content: "Revenue this year?"},
		{Role: "assistant", Content: "1M"},
		{Role: "user", Content: "And next year?"},
	}, got.Conversation())
	assert.Equal(t, "gpt-4o", *got.Engine)
}

func TestGeneralRequest_InputOnly(t *testing.T) {
	got, err := schema.Decode[GeneralRequest](context.Background(), newDecoder(t), []byte(`{"input":"hello"}`))
	require.NoError(t, err)
	assert.Nil(t, got.Messages)
	assert.Equal(t, []Message{{Role: "user", Content: "hello"}}, got.Conversation())
}

// ==========================
// Optional Record Tests
// ==========================

func TestVoiceRequest_DefaultVoice(t *testing.T) {
	d := newDecoder(t)

	got, err := schema.Decode[VoiceRequest](context.Background(), d, []byte(`{"freetext":"Hello"}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultVoiceID, got.VoiceID)

	got, err = schema.Decode[VoiceRequest](context.Background(), d, []byte(`{"voice_id":"abc","freetext":"Hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "abc", got.VoiceID)

	got, err = schema.Decode[VoiceRequest](context.Background(), d, []byte(`{"voice_id":null}`))
	require.NoError(t, err)
	assert.Equal(t, DefaultVoiceID, got.VoiceID)
}

func TestExplainer(t *testing.T) {
	got, err := schema.Decode[Explainer](context.Background(), newDecoder(t), []byte(`{"input":[
		{"date":"2025-01","name":"Payroll","total_value":"1500.5","transactions":[
			{"date":"2025-01-05","name":"Alice","amount":1000},
			{"date":"2025-01-20","name":"Bob","amount":500.5}
		]},
		{"name":"Rent"}
	]}`))
	require.NoError(t, err)

	require.Len(t, got.Input, 2)
	assert.Equal(t, schema.Float(1500.5), *got.Input[0].TotalValue)
	assert.InDelta(t, 1500.5, got.Input[0].TransactionSum(), 1e-9)
	assert.Zero(t, got.Input[1].TransactionSum())

	_, err = schema.Decode[Explainer](context.Background(), newDecoder(t), []byte(`{"input":[{"transactions":[{"amount":"lots"}]}]}`))
	assert.Equal(t, errors.ErrCodeMalformedInput, errors.CodeOf(err))
}

func TestPromptSummarizer_AnyResponse(t *testing.T) {
	d := newDecoder(t)

	got, err := schema.Decode[PromptSummarizer](context.Background(), d,
		[]byte(`{"response":{"positions":[1,2]},"user_input":"hire two","prompt_type":"hiring","prompt_operation":"generate"}`))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"positions": []interface{}{float64(1), float64(2)}}, got.Response)
	assert.Equal(t, "generate", *got.PromptOperation)

	got, err = schema.Decode[PromptSummarizer](context.Background(), d, []byte(`{"response":"plain"}`))
	require.NoError(t, err)
	assert.Equal(t, "plain", got.Response)
}

func TestSmallRecords(t *testing.T) {
	d := newDecoder(t)

	id, err := schema.Decode[ObjectID](context.Background(), d, []byte(`{"id":"17"}`))
	require.NoError(t, err)
	assert.Equal(t, schema.Int(17), *id.ID)

	resp, err := schema.Decode[StringResponse](context.Background(), d, []byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, resp.Text())

	orch, err := schema.Decode[Orchestrator](context.Background(), d, []byte(`{"branch_id":3,"freetext":"go on"}`))
	require.NoError(t, err)
	assert.Equal(t, schema.Int(3), *orch.BranchID)

	job, err := schema.Decode[JobRequest](context.Background(), d, []byte(`{"sector":"Legal","letters":"Pa"}`))
	require.NoError(t, err)
	assert.Equal(t, JobRequest{Sector: "Legal", Letters: "Pa"}, *job)

	_, err = schema.Decode[ObjectID](context.Background(), d, []byte(`{"id":"seventeen"}`))
	assert.Equal(t, errors.ErrCodeMalformedInput, errors.CodeOf(err))
}
