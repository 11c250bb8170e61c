package aoc

// Graph is a directed graph with weighted edges.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

// AddEdge adds an edge from a to b. Use it twice for an undirected edge.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	InitMap(&g.Edges)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
	g.AddNode(a)
	g.AddNode(b)
}

// Distances returns the length of the shortest path from start to every node
// reachable from it, using Dijkstra's algorithm.
func (g *Graph[K]) Distances(start K) map[K]int {
	dist := map[K]int{start: 0}
	items := map[K]*PQI[K]{}
	q := MinQueue[K]()
	push := func(k K, d int) {
		if it, ok := items[k]; ok {
			if it.Index() == -1 || d >= it.P {
				return
			}
			it.P = d
			q.Update(it)
			return
		}
		it := &PQI[K]{V: k, P: d}
		items[k] = it
		q.Push(it)
	}
	push(start, 0)
	for q.Len() > 0 {
		cur := q.Pop()
		dist[cur.V] = cur.P
		for next, w := range g.Edges[cur.V] {
			push(next, cur.P+w)
		}
	}
	return dist
}
