package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaiswalaj/sast-exporter-data-update/internal/cli"
)

type fixture struct {
	dir     string
	input   string
	mapping string
	output  string
}

func newFixture(t *testing.T, inputJSON, mappingCSV string) fixture {
	t.Helper()
	dir := t.TempDir()
	fx := fixture{
		dir:     dir,
		input:   filepath.Join(dir, "input.json"),
		mapping: filepath.Join(dir, "mapping.csv"),
		output:  filepath.Join(dir, "output.json"),
	}
	require.NoError(t, os.WriteFile(fx.input, []byte(inputJSON), 0o644))
	require.NoError(t, os.WriteFile(fx.mapping, []byte(mappingCSV), 0o644))
	return fx
}

func (fx fixture) args(extra ...string) []string {
	base := []string{
		"--json_input_path", fx.input,
		"--json_key_name", "name",
		"--json_output_path", fx.output,
		"--csv_path", fx.mapping,
		"--old_data_col_name", "old",
		"--new_data_col_name", "new",
	}
	return append(base, extra...)
}

func execute(t *testing.T, args []string) error {
	t.Helper()
	cmd := cli.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}

func readOutput(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestRunRewritesAndFilters(t *testing.T) {
	fx := newFixture(t,
		`[{"name":"Foo","severity":"high"},{"name":"Bar"}]`,
		"old,new\nFoo,FooNew\n")

	require.NoError(t, execute(t, fx.args()))

	out := readOutput(t, fx.output)
	require.Len(t, out, 1)
	assert.Equal(t, "FooNew", out[0]["name"])
	assert.Equal(t, "high", out[0]["severity"])
}

func TestRunEmptyInput(t *testing.T) {
	fx := newFixture(t, `[]`, "old,new\nFoo,FooNew\n")

	require.NoError(t, execute(t, fx.args()))
	assert.Empty(t, readOutput(t, fx.output))
}

func TestRunMissingMappingColumnWritesNoOutput(t *testing.T) {
	fx := newFixture(t, `[{"name":"Foo"}]`, "other,new\nFoo,FooNew\n")

	require.Error(t, execute(t, fx.args()))
	_, err := os.Stat(fx.output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunNonArrayInput(t *testing.T) {
	fx := newFixture(t, `{"name":"Foo"}`, "old,new\nFoo,FooNew\n")

	require.Error(t, execute(t, fx.args()))
	_, err := os.Stat(fx.output)
	assert.True(t, os.IsNotExist(err))
}

func TestRunMissingKeyAbortsByDefault(t *testing.T) {
	fx := newFixture(t, `[{"project":"Foo"}]`, "old,new\nFoo,FooNew\n")

	require.Error(t, execute(t, fx.args()))
}

func TestRunSkipMissingKey(t *testing.T) {
	fx := newFixture(t, `[{"project":"Foo"},{"name":"Foo"}]`, "old,new\nFoo,FooNew\n")

	require.NoError(t, execute(t, fx.args("--skip_missing_key")))
	out := readOutput(t, fx.output)
	require.Len(t, out, 1)
	assert.Equal(t, "FooNew", out[0]["name"])
}

func TestRunWritesAuditReport(t *testing.T) {
	fx := newFixture(t, `[{"name":"Foo"},{"name":"Gone"}]`, "old,new\nFoo,FooNew\n")
	auditPath := filepath.Join(fx.dir, "audit.json")

	require.NoError(t, execute(t, fx.args("--audit_output_path", auditPath)))

	data, err := os.ReadFile(auditPath)
	require.NoError(t, err)
	var audit struct {
		KeyField string `json:"keyField"`
		Summary  struct {
			Input   int `json:"input"`
			Kept    int `json:"kept"`
			Dropped int `json:"dropped"`
		} `json:"summary"`
		Dropped []struct {
			Index  int    `json:"index"`
			Value  string `json:"value"`
			Reason string `json:"reason"`
		} `json:"dropped"`
	}
	require.NoError(t, json.Unmarshal(data, &audit))
	assert.Equal(t, "name", audit.KeyField)
	assert.Equal(t, 2, audit.Summary.Input)
	assert.Equal(t, 1, audit.Summary.Dropped)
	require.Len(t, audit.Dropped, 1)
	assert.Equal(t, "Gone", audit.Dropped[0].Value)
}

func TestRunRequiresExactlyOneMappingPath(t *testing.T) {
	fx := newFixture(t, `[]`, "old,new\n")

	err := execute(t, append(fx.args(), "--excel_path", filepath.Join(fx.dir, "m.xlsx")))
	require.Error(t, err)

	err = execute(t, []string{
		"--json_input_path", fx.input,
		"--json_key_name", "name",
		"--json_output_path", fx.output,
		"--old_data_col_name", "old",
		"--new_data_col_name", "new",
	})
	require.Error(t, err)
}

func TestRunMissingRequiredFlag(t *testing.T) {
	fx := newFixture(t, `[]`, "old,new\n")

	err := execute(t, []string{
		"--json_input_path", fx.input,
		"--json_output_path", fx.output,
		"--csv_path", fx.mapping,
		"--old_data_col_name", "old",
		"--new_data_col_name", "new",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json_key_name")
}
