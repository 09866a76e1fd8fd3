package table

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/cablecode/pkg/cablecode/internalerr"
)

func TestIndexFoldsAccents(t *testing.T) {
	tbl := New("Item", "Descrição")

	idx, err := tbl.Index("Descrição")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = tbl.Index("descricao")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	_, err = tbl.Index("Quantidade")
	assert.True(t, errors.Is(err, internalerr.ErrColumnNotFound))
}

func TestColumnShortRows(t *testing.T) {
	tbl := New("Item", "Descrição")
	tbl.Append("1", "CABO - 4Cx2.5mm2")
	tbl.Append("2")

	values, err := tbl.Column("Descrição")
	require.NoError(t, err)
	assert.Equal(t, []string{"CABO - 4Cx2.5mm2", ""}, values)
}

func TestSetColumnAppendsAndReplaces(t *testing.T) {
	tbl := New("Descrição")
	tbl.Append("a")
	tbl.Append("b")

	require.NoError(t, tbl.SetColumn("Código", []string{"x", "y"}))
	require.NoError(t, tbl.SetColumn("Código", []string{"x2", "y2"}))

	want := &Table{
		Columns: []string{"Descrição", "Código"},
		Rows:    [][]string{{"a", "x2"}, {"b", "y2"}},
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	err := tbl.SetColumn("Código", []string{"only one"})
	assert.Error(t, err)
}

func TestClone(t *testing.T) {
	tbl := New("A")
	tbl.Append("1")

	c := tbl.Clone()
	c.Rows[0][0] = "changed"
	c.Columns[0] = "B"

	assert.Equal(t, "1", tbl.Rows[0][0])
	assert.Equal(t, "A", tbl.Columns[0])
}

func TestReadCSVDetectsSemicolon(t *testing.T) {
	in := "\xEF\xBB\xBFItem;Descrição\n1;CABO 3Cx2,5mm2\n2;\"CABO; COR AZUL - 4Cx1,5mm2\"\n"

	tbl, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"Item", "Descrição"}, tbl.Columns)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "CABO 3Cx2,5mm2", tbl.Cell(0, 1))
	assert.Equal(t, "CABO; COR AZUL - 4Cx1,5mm2", tbl.Cell(1, 1))
}

func TestReadCSVComma(t *testing.T) {
	in := "Descrição,Qtd\nCABO - 12Px2.5mm2,100\nCABO - 7Cx1.5mm2\n"

	tbl, err := ReadCSV(strings.NewReader(in), 0)
	require.NoError(t, err)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, "", tbl.Cell(1, 1))
}

func TestReadCSVEmpty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""), ',')
	assert.Error(t, err)
}

func TestWriteCSVRoundTrip(t *testing.T) {
	tbl := New("Descrição", "Referência YOFC")
	tbl.Append("CABO, FLEX - 4Cx2.5mm2", "025 CE PVC/A/ST1 04 CL5 FR PT")
	tbl.Append("CABO")

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, tbl, ';'))

	back, err := ReadCSV(&buf, ';')
	require.NoError(t, err)

	want := &Table{
		Columns: tbl.Columns,
		Rows: [][]string{
			{"CABO, FLEX - 4Cx2.5mm2", "025 CE PVC/A/ST1 04 CL5 FR PT"},
			{"CABO", ""},
		},
	}
	if diff := cmp.Diff(want, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestReadHTML(t *testing.T) {
	doc := `<html><body>
<p>Planilha</p>
<table>
  <tr><th>Item</th><th> Descrição </th></tr>
  <tr><td>1</td><td>CABO PARA INVERSOR<br>HEPR - 3Cx4mm2+1Cx4mm2</td></tr>
  <tr><td>2</td><td><b>CABO</b> DE INSTRUMENTACAO - 12Px2.5mm2</td></tr>
</table>
<table><tr><td>ignored</td></tr></table>
</body></html>`

	tbl, err := ReadHTML(strings.NewReader(doc))
	require.NoError(t, err)

	want := &Table{
		Columns: []string{"Item", "Descrição"},
		Rows: [][]string{
			{"1", "CABO PARA INVERSOR HEPR - 3Cx4mm2+1Cx4mm2"},
			{"2", "CABO DE INSTRUMENTACAO - 12Px2.5mm2"},
		},
	}
	if diff := cmp.Diff(want, tbl); diff != "" {
		t.Errorf("html table mismatch (-want +got):\n%s", diff)
	}
}

func TestReadHTMLNoTable(t *testing.T) {
	_, err := ReadHTML(strings.NewReader("<p>nothing</p>"))
	assert.Error(t, err)
}
