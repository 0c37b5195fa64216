// Package citygraph is a small in-memory toolkit for city route maps:
// build an immutable weighted undirected graph of cities and roads, then
// analyze it and search it.
//
// What's inside:
//
//	core/       immutable Graph, Builder, Vertex and Edge types
//	dataset/    city/route datasets: built-in reference map, TOML loading, random maps
//	analytics/  degree summary and connected components
//	dfs/        iterative depth-first search and first-found paths
//	bfs/        breadth-first search and fewest-hop paths
//	dijkstra/   single-source, single-pair and all-pairs shortest routes
//	converters/ gonum graph conversion and Graphviz DOT rendering
//	report/     terminal output for paths, summaries and route tables
//	config/     layered configuration (defaults, file, env, flags)
//	logging/    slog logger construction
//	cmd/citygraph the command that runs the full analysis
//
// Ordering:
//
//	Vertices keep their insertion order and every vertex lists its incident
//	edges in the order they were added. DFS, BFS and Dijkstra tie-breaking
//	all follow this order, so results are reproducible for a given dataset.
//
// Quick start:
//
//	g, _ := dataset.Reference().Graph()
//	route, km, _ := dijkstra.ShortestPath(g, "Kyiv", "Krakow")
//	fmt.Println(route, km) // [Kyiv Lutsk Lviv Krakow] 910
package citygraph
