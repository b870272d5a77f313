package nodes

import (
	"fmt"

	"github.com/fabio-terranova/nodex/graph"
	"github.com/fabio-terranova/nodex/internal/csvio"
)

// CSVParams configures a CSV source.
type CSVParams struct {
	FilePath string `json:"filePath"`
}

// CSV is a file source: each column of the loaded CSV file becomes an
// output port named after the column.
type CSV struct {
	node   *graph.Node
	params CSVParams
	data   *csvio.Data
}

// NewCSV creates a CSV source and loads the file eagerly, so a missing or
// malformed file fails construction.
func NewCSV(name string, params CSVParams) (*CSV, error) {
	if params.FilePath == "" {
		return nil, fmt.Errorf("%w: csv filePath must not be empty", graph.ErrInvalidParameter)
	}

	data, err := csvio.Load(params.FilePath)
	if err != nil {
		return nil, err
	}

	c := &CSV{
		node:   graph.NewNode(name, "CSV Import"),
		params: params,
		data:   data,
	}
	for _, col := range data.Names {
		column := data.Columns[col]
		graph.AddOutput(c.node, col, func() ([]float64, error) {
			return column, nil
		})
	}

	return c, nil
}

// Columns returns the loaded column names in file order.
func (c *CSV) Columns() []string { return c.data.Names }

// Base returns the node core.
func (c *CSV) Base() *graph.Node { return c.node }

// Type returns the registry tag.
func (c *CSV) Type() string { return TypeCSV }

// Parameters implements graph.Operator.
func (c *CSV) Parameters() map[string]any {
	return map[string]any{"filePath": c.params.FilePath}
}

// Render implements graph.Operator.
func (c *CSV) Render(ctx graph.RenderContext) {
	ctx.Text(fmt.Sprintf("%s: %d columns", c.params.FilePath, len(c.data.Names)))
}
