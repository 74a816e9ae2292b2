package docgen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRemoveAccents(t *testing.T) {
	assert.Equal(t, "Descricao", RemoveAccents("Descrição"))
	assert.Equal(t, "Preco Medio", RemoveAccents("Preço Médio"))
	assert.Equal(t, "plain", RemoveAccents("plain"))
}

func TestBuildSpreadsheetWritesHeaderAndRows(t *testing.T) {
	data := json.RawMessage(`[
		{"Nome": "Ana", "Região": "Sul"},
		{"Nome": "Bruno", "Região": "Norte"}
	]`)

	buf, err := BuildSpreadsheet(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	a1, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	b1, err := f.GetCellValue(sheetName, "B1")
	require.NoError(t, err)
	a2, err := f.GetCellValue(sheetName, "A2")
	require.NoError(t, err)
	b3, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)

	assert.Equal(t, "Nome", a1)
	assert.Equal(t, "Regiao", b1, "header accents are stripped")
	assert.Equal(t, "Ana", a2)
	assert.Equal(t, "Norte", b3)
}

func TestBuildSpreadsheetPreservesColumnOrder(t *testing.T) {
	data := json.RawMessage(`[{"Zebra": 1, "Abelha": 2, "Mico": 3}]`)

	buf, err := BuildSpreadsheet(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	a1, _ := f.GetCellValue(sheetName, "A1")
	b1, _ := f.GetCellValue(sheetName, "B1")
	c1, _ := f.GetCellValue(sheetName, "C1")
	assert.Equal(t, []string{"Zebra", "Abelha", "Mico"}, []string{a1, b1, c1})
}

func TestBuildSpreadsheetRejectsEmptyInput(t *testing.T) {
	_, err := BuildSpreadsheet(json.RawMessage(`[]`))
	assert.Error(t, err)
}

func TestBuildDocxProducesNonEmptyFile(t *testing.T) {
	buf, err := BuildDocx("# Título\n\nParágrafo de teste.")
	require.NoError(t, err)
	assert.Greater(t, buf.Len(), 0)
}
