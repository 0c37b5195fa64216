package converters

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"

	"github.com/katalvlaran/citygraph/core"
)

// DOTGraphName is the graph name written by WriteDOT.
const DOTGraphName = "citygraph"

// DOTID implements dot.Node so cities are written by name.
func (n CityNode) DOTID() string { return n.Name }

// Attributes implements encoding.Attributer. The pinned position keeps the
// layout faithful to the dataset coordinates under neato.
func (n CityNode) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "pos", Value: fmt.Sprintf("%s,%s!", formatFloat(n.Pos.X), formatFloat(n.Pos.Y))},
	}
}

// Attributes implements encoding.Attributer; the label is the route distance.
func (e RouteEdge) Attributes() []encoding.Attribute {
	return []encoding.Attribute{
		{Key: "label", Value: formatFloat(e.W)},
		{Key: "id", Value: e.EdgeID},
	}
}

// MarshalDOT returns g as a Graphviz DOT document.
func MarshalDOT(g *core.Graph) ([]byte, error) {
	gg, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	b, err := dot.Marshal(gg.Graph(), DOTGraphName, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("converters: marshal dot: %w", err)
	}

	return append(b, '\n'), nil
}

// WriteDOT writes g as a Graphviz DOT document to w.
func WriteDOT(w io.Writer, g *core.Graph) error {
	b, err := MarshalDOT(g)
	if err != nil {
		return err
	}
	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("converters: write dot: %w", err)
	}

	return nil
}

// WriteDOTFile renders g into the file at path, replacing it if present.
func WriteDOTFile(path string, g *core.Graph) error {
	b, err := MarshalDOT(g)
	if err != nil {
		return err
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("converters: write %s: %w", path, err)
	}

	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
