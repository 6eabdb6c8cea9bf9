package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	registryPath := filepath.Join(dir, "contract-registry.json")
	cfg := "app:\n  name: schemactl-test\n  version: 9.9.9\n" +
		"logging:\n  level: error\n  format: console\n" +
		"registry:\n  path: " + registryPath + "\n" +
		"decoder:\n  today: \"2025-05-20\"\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))
	return path, registryPath
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath, _ := writeConfig(t)
	return runWithConfig(t, cfgPath, stdin, args...)
}

func runWithConfig(t *testing.T, cfgPath, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

// ==========================
// Command Tests
// ==========================

func TestList(t *testing.T) {
	out, err := run(t, "", "list", "--category", "salary")
	require.NoError(t, err)

	assert.Contains(t, out, "salary_generator_request")
	assert.Contains(t, out, "strict")
	assert.NotContains(t, out, "goals_result")
}

func TestVocab(t *testing.T) {
	out, err := run(t, "", "vocab")
	require.NoError(t, err)
	assert.Contains(t, out, "graph_types")

	out, err = run(t, "", "vocab", "departments")
	require.NoError(t, err)
	var summary struct {
		Name     string   `json:"name"`
		Fallback string   `json:"fallback"`
		Values   []string `json:"values"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "G&A", summary.Fallback)
	assert.Len(t, summary.Values, 4)

	_, err = run(t, "", "vocab", "colors")
	assert.Error(t, err)
}

func TestDecode(t *testing.T) {
	out, err := run(t, `{"WHEN":"2025-01-01","FUNDING":"3000000"}`, "decode", "goals_result")
	require.NoError(t, err)
	assert.JSONEq(t, `{"WHEN":"2025-05-20","FUNDING":3000000,"REVENUE":0,"EMPLOYEES":0}`, strings.TrimSpace(out))
}

func TestDecode_Lines(t *testing.T) {
	input := `{"positions":[{"department":"rnd","geo_location":"Japan"}]}` + "\n\n" +
		`{"positions":"none"}` + "\n" +
		`{"positions":[]}` + "\n"

	out, err := run(t, input, "decode", "--lines", "position_list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 3 payloads rejected")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	var first struct {
		Positions []struct {
			Department  string `json:"department"`
			GeoLocation string `json:"geo_location"`
		} `json:"positions"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "R&D", first.Positions[0].Department)
	assert.Equal(t, "Japan", first.Positions[0].GeoLocation)
	assert.JSONEq(t, `{"positions":[]}`, lines[1])
}

func TestDecode_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"plots":[{"type":"DONUT"}]}`), 0644))

	out, err := run(t, "", "decode", "plot_collection_response", path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"plots":[{"type":"donut","formulas":null}]}`, strings.TrimSpace(out))
}

func TestDecode_UnknownRecord(t *testing.T) {
	_, err := run(t, `{}`, "decode", "no_such_record")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_record")
}

func TestRegistry_ExportThenCheck(t *testing.T) {
	cfgPath, registryPath := writeConfig(t)

	out, err := runWithConfig(t, cfgPath, "", "registry", "export")
	require.NoError(t, err)
	assert.Contains(t, out, registryPath)

	data, err := os.ReadFile(registryPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "9.9.9"`)
	assert.Contains(t, string(data), `"lastUpdated": "2025-05-20T`)

	out, err = runWithConfig(t, cfgPath, "", "registry", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Registry validation passed")

	edited := strings.Replace(string(data), `"id": "job_request"`, `"id": "job_request_v0"`, 1)
	require.NoError(t, os.WriteFile(registryPath, []byte(edited), 0644))

	_, err = runWithConfig(t, cfgPath, "", "registry", "check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "added: job_request")
	assert.Contains(t, err.Error(), "removed: job_request_v0")
}
