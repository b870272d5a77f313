// Command nodex runs a serialised node graph headlessly: it loads the
// graph JSON, ticks it, and exports the input of every Viewer node.
// MultiViewer inputs are not exported.
//
// Usage:
//
//	nodex -graph patch.json
//	nodex -graph patch.json -ticks 3 -out signals.csv
//	nodex -graph patch.json -wav signals.wav -fs 8000
//
// Operator errors are logged and the run continues, matching the
// interactive host's policy.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/fabio-terranova/nodex/graph"
	"github.com/fabio-terranova/nodex/graph/nodes"
	"github.com/fabio-terranova/nodex/internal/csvio"
	"github.com/fabio-terranova/nodex/internal/wavio"
)

// logContext discards plots and routes operator text to the log.
type logContext struct {
	node string
}

func (c *logContext) Plot(string, []float64) {}

func (c *logContext) Text(msg string) {
	log.Printf("%s: %s", c.node, msg)
}

func main() {
	graphPath := flag.String("graph", "", "path to a serialised graph JSON file")
	ticks := flag.Int("ticks", 1, "number of frames to evaluate")
	csvPath := flag.String("out", "", "write viewer inputs to this CSV file")
	wavPath := flag.String("wav", "", "write viewer inputs to this WAV file")
	sampleRate := flag.Float64("fs", 1000, "sample rate recorded in the WAV export")
	precision := flag.Int("precision", 6, "decimal places in the CSV export")
	flag.Parse()

	if *graphPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*graphPath)
	if err != nil {
		log.Fatalf("read graph: %v", err)
	}

	g := graph.New()
	if err := g.Load(nodes.NewRegistry(), data); err != nil {
		g.Clear()
		log.Fatalf("load graph: %v", err)
	}
	log.Printf("loaded %d nodes from %s", g.Len(), *graphPath)

	var viewers []*nodes.Viewer
	for _, op := range g.Nodes() {
		if v, ok := op.(*nodes.Viewer); ok {
			viewers = append(viewers, v)
		}
	}

	columns := map[string][]float64{}
	names := []string{}

	for frame := 0; frame < *ticks; frame++ {
		for _, op := range g.Nodes() {
			op.Render(&logContext{node: op.Base().Name()})
		}

		for _, v := range viewers {
			series, err := v.Data()
			if err != nil {
				log.Printf("viewer %s: %v", v.Base().Name(), err)
				continue
			}
			name := v.Base().Name()
			if _, seen := columns[name]; !seen {
				names = append(names, name)
			}
			columns[name] = series
		}

		g.Tick()
	}

	if len(names) == 0 && (*csvPath != "" || *wavPath != "") {
		log.Fatal("no viewer data to export")
	}

	if *csvPath != "" {
		doc := &csvio.Data{Names: names, Columns: columns}
		if err := csvio.Save(*csvPath, doc, *precision); err != nil {
			log.Fatalf("write csv: %v", err)
		}
		log.Printf("wrote %d columns to %s", len(names), *csvPath)
	}

	if *wavPath != "" {
		channels := make([][]float64, 0, len(names))
		for _, name := range names {
			channels = append(channels, columns[name])
		}
		if err := wavio.Save(*wavPath, channels, *sampleRate); err != nil {
			log.Fatalf("write wav: %v", err)
		}
		log.Printf("wrote %d channels to %s", len(channels), *wavPath)
	}

	if *csvPath == "" && *wavPath == "" {
		for _, name := range names {
			fmt.Printf("%s: %d samples\n", name, len(columns[name]))
		}
	}
}
