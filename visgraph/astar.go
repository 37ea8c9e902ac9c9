package visgraph

import (
	"container/heap"
	"math"
)

var inf = math.Inf(1)

// Node represents a vertex in the A* open set
type Node struct {
	VertexID int     // ID of the vertex in the graph
	G        float64 // Cost from start to this node
	H        float64 // Heuristic cost from this node to end
	F        float64 // Total cost (G + H)
	Parent   *Node
	Index    int // Index in the heap
	seq      int // Insertion order, breaks ties on F
}

// PriorityQueue implements heap.Interface for A* algorithm
type PriorityQueue []*Node

func (pq PriorityQueue) Len() int { return len(pq) }

func (pq PriorityQueue) Less(i, j int) bool {
	if pq[i].F == pq[j].F {
		return pq[i].seq < pq[j].seq
	}
	return pq[i].F < pq[j].F
}

func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}

func (pq *PriorityQueue) Push(x interface{}) {
	n := len(*pq)
	node := x.(*Node)
	node.Index = n
	*pq = append(*pq, node)
}

func (pq *PriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.Index = -1
	*pq = old[0 : n-1]
	return node
}

// ShortestPath runs A* from the start to the end vertex of graph. It returns
// the waypoints after the start point, ending with the end point, or an empty
// path when the end is unreachable.
func ShortestPath(graph *Graph) []Point {
	path, _ := search(graph)
	return path
}

// ShortestPathCost is ShortestPath that also reports the path length. The
// length is +Inf when the end is unreachable.
func ShortestPathCost(graph *Graph) ([]Point, float64) {
	return search(graph)
}

func search(graph *Graph) ([]Point, float64) {
	if graph == nil || len(graph.vertices) < 2 {
		return []Point{}, inf
	}

	endPoint := graph.EndPoint()

	openSet := &PriorityQueue{}
	heap.Init(openSet)

	seq := 0
	startNode := &Node{
		VertexID: startVertex,
		G:        0,
		H:        graph.StartPoint().Distance(endPoint),
	}
	startNode.F = startNode.H
	heap.Push(openSet, startNode)

	// Vertices missing from openSetMap and closedSet have g = +Inf.
	closedSet := make(map[int]bool)
	openSetMap := make(map[int]*Node)
	openSetMap[startVertex] = startNode

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(*Node)
		delete(openSetMap, current.VertexID)

		// With a consistent heuristic the end is final once popped.
		if current.VertexID == endVertex {
			return reconstruct(graph, current), current.G
		}

		closedSet[current.VertexID] = true

		for _, neighbor := range graph.vertices[current.VertexID].Neighbors {
			neighborID := neighbor.Vertex
			if closedSet[neighborID] {
				continue
			}

			tentativeG := current.G + graph.edges[neighbor.Edge].Weight

			node, exists := openSetMap[neighborID]
			if !exists {
				seq++
				node = &Node{
					VertexID: neighborID,
					G:        tentativeG,
					H:        graph.vertices[neighborID].Pos.Distance(endPoint),
					Parent:   current,
					seq:      seq,
				}
				node.F = node.G + node.H
				heap.Push(openSet, node)
				openSetMap[neighborID] = node
			} else if tentativeG+node.H < node.F {
				node.G = tentativeG
				node.F = node.G + node.H
				node.Parent = current
				heap.Fix(openSet, node.Index)
			}
		}
	}

	// No path found
	return []Point{}, inf
}

// reconstruct walks parent pointers back to the start, which is left out.
func reconstruct(graph *Graph, end *Node) []Point {
	var reversed []Point
	for node := end; node.Parent != nil; node = node.Parent {
		reversed = append(reversed, graph.vertices[node.VertexID].Pos)
	}

	path := make([]Point, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}

// PathLength returns the length of the polyline start, path[0], path[1], ...
func PathLength(start Point, path []Point) float64 {
	length := 0.0
	prev := start
	for _, p := range path {
		length += prev.Distance(p)
		prev = p
	}
	return length
}
