package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONFencedArrayWithProse(t *testing.T) {
	raw := "prefix ```json [{\"a\":1}] ``` suffix"

	got, err := ExtractJSON(raw)
	require.NoError(t, err)

	var parsed []map[string]int
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, []map[string]int{{"a": 1}}, parsed)
}

func TestExtractJSONObjectSurroundedByText(t *testing.T) {
	raw := "Claro! Aqui está a correção:\n{\"total_score\": 920, \"feedback\": \"Bom texto\"}\nEspero ter ajudado."

	got, err := ExtractJSON(raw)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, float64(920), parsed["total_score"])
}

func TestExtractJSONNoBracketsReturnsSentinel(t *testing.T) {
	got, err := ExtractJSON("nothing structured here at all")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNoStructuredData)
}

func TestExtractJSONSingleQuotedFallback(t *testing.T) {
	raw := "resultado: [{'nome': 'Ana', 'idade': 30}]"

	got, err := ExtractJSON(raw)
	require.NoError(t, err)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Ana", parsed[0]["nome"])
}

func TestExtractJSONApostropheInsideDoubleQuotes(t *testing.T) {
	raw := `{"name": "O'Brien"}`

	got, err := ExtractJSON(raw)
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(got, &parsed))
	assert.Equal(t, "O'Brien", parsed["name"])
}

func TestExtractJSONTruncatedOutputReturnsSentinel(t *testing.T) {
	_, err := ExtractJSON(`{"questions": [{"q": "pergunta`)
	assert.ErrorIs(t, err, ErrNoStructuredData)
}

func TestExtractJSONArrayIgnoresLeadingObject(t *testing.T) {
	// ExtractJSON would latch onto the object; the array variant must not.
	raw := `{"status": "ok"} e os dados: [{"nome": "Ana"}]`

	got, err := ExtractJSONArray(raw)
	require.NoError(t, err)

	var parsed []map[string]string
	require.NoError(t, json.Unmarshal(got, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Ana", parsed[0]["nome"])
}

func TestExtractJSONArrayUnwrapsEnvelopeObject(t *testing.T) {
	raw := `{"dados": [{"nome": "Ana", "idade": 30}]}`

	got, err := ExtractJSONArray(raw)
	require.NoError(t, err)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal(got, &parsed))
	require.Len(t, parsed, 1)
	assert.Equal(t, "Ana", parsed[0]["nome"])
}

func TestExtractJSONArrayObjectOnlyReturnsSentinel(t *testing.T) {
	_, err := ExtractJSONArray(`{"colunas": "sem linhas aqui"}`)
	assert.ErrorIs(t, err, ErrNoStructuredData)
}
