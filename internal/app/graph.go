package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/hyperifyio/tripexport/internal/aggregate"
	"github.com/hyperifyio/tripexport/internal/dataset"
)

// buildConnectivityGraph links each source city to the destination places
// reachable from it. Edge weight is the number of routes; missing cities
// fold into "Unknown" as in the source-city report.
func buildConnectivityGraph(places []dataset.Place) (graph.Graph[string, string], error) {
	var routes aggregate.Groups[[2]string, int]
	for _, p := range places {
		for _, o := range p.TravelOptions {
			*routes.Get([2]string{o.SourceCity.Or("Unknown"), p.Name.String()}) += 1
		}
	}

	g := graph.New(graph.StringHash, graph.Directed())
	addVertex := func(name, shape string) error {
		err := g.AddVertex(name, graph.VertexAttribute("shape", shape))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return err
		}
		return nil
	}
	var err error
	routes.Each(func(k [2]string, n *int) {
		if err != nil {
			return
		}
		if err = addVertex(k[0], "box"); err != nil {
			return
		}
		if err = addVertex(k[1], "ellipse"); err != nil {
			return
		}
		err = g.AddEdge(k[0], k[1],
			graph.EdgeWeight(*n),
			graph.EdgeAttribute("label", strconv.Itoa(*n)),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("build connectivity graph: %w", err)
	}
	return g, nil
}

// writeConnectivityDOT renders the connectivity graph as Graphviz DOT.
func writeConnectivityDOT(path string, places []dataset.Place) error {
	g, err := buildConnectivityGraph(places)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := draw.DOT(g, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("render dot: %w", err)
	}
	return f.Close()
}
