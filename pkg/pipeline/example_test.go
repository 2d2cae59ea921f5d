package pipeline_test

import (
	"context"
	"fmt"

	"github.com/matzehuels/smartedge/pkg/geom"
	"github.com/matzehuels/smartedge/pkg/pipeline"
	"github.com/matzehuels/smartedge/pkg/render/edge"
)

func ExampleRoute() {
	opts := pipeline.DefaultOptions()
	opts.DrawEdge = edge.StraightLine

	res, err := pipeline.Route(context.Background(), pipeline.Request{
		Source: geom.Anchor(0, 0, geom.Bottom),
		Target: geom.Anchor(100, 100, geom.Top),
	}, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Path)
	fmt.Println(res.LabelX, res.LabelY)
	// Output:
	// M 0,0 L 0,0 L 100,100 L 100,100
	// 50 50
}

func ExampleRoute_detour() {
	opts := pipeline.DefaultOptions()
	opts.DrawEdge = edge.Step

	res, err := pipeline.Route(context.Background(), pipeline.Request{
		Source: geom.Anchor(0, 0, geom.Right),
		Target: geom.Anchor(100, 0, geom.Left),
		Nodes:  []geom.Node{{ID: "blocker", X: 40, Y: -10, Width: 20, Height: 20}},
	}, opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(res.Waypoints) > 2, res.Stats.Length > 100)
	// Output:
	// true true
}
