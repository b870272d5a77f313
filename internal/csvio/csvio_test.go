package csvio

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_WithHeader(t *testing.T) {
	in := "time, value\n0.0, 1.5\n0.1, -2.5\n"
	data, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"time", "value"}, data.Names)
	assert.Equal(t, []float64{0.0, 0.1}, data.Columns["time"])
	assert.Equal(t, []float64{1.5, -2.5}, data.Columns["value"])
}

func TestRead_WithoutHeader(t *testing.T) {
	in := "1,2,3\n4,5,6\n"
	data, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"Col1", "Col2", "Col3"}, data.Names)
	assert.Equal(t, []float64{1, 4}, data.Columns["Col1"])
	assert.Equal(t, []float64{3, 6}, data.Columns["Col3"])
}

func TestRead_SkipsCommentsAndBlankLines(t *testing.T) {
	in := "# generated data\n\nx\n1\n\n# trailing comment\n2\n"
	data, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"x"}, data.Names)
	assert.Equal(t, []float64{1, 2}, data.Columns["x"])
}

func TestRead_TrimsCells(t *testing.T) {
	in := "  a , b \n 1 ,\t2 \n"
	data, err := Read(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, data.Names)
	assert.Equal(t, []float64{1}, data.Columns["a"])
}

func TestRead_RaggedRow(t *testing.T) {
	in := "a,b\n1,2\n3\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "row 3")
}

func TestRead_NonNumericDataCell(t *testing.T) {
	in := "a,b\n1,2\n3,oops\n"
	_, err := Read(strings.NewReader(in))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestRead_Empty(t *testing.T) {
	_, err := Read(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParse))
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "signals.csv")

	in := &Data{
		Names: []string{"left", "right"},
		Columns: map[string][]float64{
			"left":  {0.5, -0.25, 1},
			"right": {1, 2, 3},
		},
	}
	require.NoError(t, Save(path, in, 9))

	out, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, in.Names, out.Names)
	for _, name := range in.Names {
		require.Len(t, out.Columns[name], len(in.Columns[name]))
		for i := range in.Columns[name] {
			assert.InDelta(t, in.Columns[name][i], out.Columns[name][i], 1e-9)
		}
	}
}

func TestWrite_NoColumns(t *testing.T) {
	var sb strings.Builder
	err := Write(&sb, &Data{}, 6)
	require.Error(t, err)
}
