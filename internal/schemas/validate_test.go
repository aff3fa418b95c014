package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["query"],
	"properties": {
		"query": {"type": "string", "minLength": 1},
		"top_k": {"type": "integer"}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateJSONString_Valid(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"query": "find candidates", "top_k": 5}`)
	assert.NoError(t, err)
}

func TestValidateJSONString_MissingRequiredField(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"top_k": 5}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.NotEmpty(t, validationErr.Errors)
	assert.Contains(t, validationErr.Error(), "query")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"query": "q", "top_k": "five"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "top_k", validationErr.Errors[0].Field)
}

func TestValidateJSONString_BadSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": 42}`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidateJSON_Files(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)

	validPath := writeFile(t, dir, "valid.json", `{"query": "q"}`)
	assert.NoError(t, ValidateJSON(schemaPath, validPath))

	invalidPath := writeFile(t, dir, "invalid.json", `{}`)
	err := ValidateJSON(schemaPath, invalidPath)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	docPath := writeFile(t, dir, "doc.json", `{"query": "q"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), docPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestResolveSchemaPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "present.json", "{}")

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	assert.NotEmpty(t, ResolveSchemaPath("present.json"))
	assert.Empty(t, ResolveSchemaPath("absent.json"))
}
