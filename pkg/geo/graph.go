package geo

import (
	"container/heap"
	"errors"
	"math"
)

var ErrNegativeWeight = errors.New("negative edge weight")

// Edge - взвешенное ребро графа
type Edge struct {
	To     string  `json:"to"`
	Weight float64 `json:"weight"`
}

// Graph - список смежности, ключ - идентификатор узла
type Graph map[string][]Edge

// AddNode добавляет узел без рёбер, если его ещё нет
func (g Graph) AddNode(id string) {
	if _, ok := g[id]; !ok {
		g[id] = nil
	}
}

// AddEdge добавляет направленное ребро from -> to. Оба узла становятся частью графа.
func (g Graph) AddEdge(from, to string, weight float64) {
	g.AddNode(to)
	g[from] = append(g[from], Edge{To: to, Weight: weight})
}

// AddUndirected добавляет ребро в обе стороны с одинаковым весом
func (g Graph) AddUndirected(a, b string, weight float64) {
	g.AddEdge(a, b, weight)
	g.AddEdge(b, a, weight)
}

// PathResult - результат поиска кратчайшего пути
type PathResult struct {
	Distance float64  `json:"distance"`
	Path     []string `json:"path"`
}

// ShortestPath ищет кратчайший путь алгоритмом Дейкстры.
// Возвращает false, если start или target нет в графе либо target недостижим.
// При равных расстояниях узлы извлекаются в порядке их добавления в очередь.
func ShortestPath(g Graph, start, target string) (PathResult, bool, error) {
	if _, ok := g[start]; !ok {
		return PathResult{}, false, nil
	}
	if _, ok := g[target]; !ok {
		return PathResult{}, false, nil
	}

	dist := map[string]float64{start: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool)

	pq := &queue{}
	heap.Push(pq, &item{node: start, dist: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*item)
		if visited[cur.node] {
			continue
		}
		if cur.node == target {
			break
		}
		visited[cur.node] = true

		for _, e := range g[cur.node] {
			if e.Weight < 0 || math.IsNaN(e.Weight) {
				return PathResult{}, false, ErrNegativeWeight
			}
			if _, ok := g[e.To]; !ok {
				continue
			}
			alt := cur.dist + e.Weight
			if d, seen := dist[e.To]; !seen || alt < d {
				dist[e.To] = alt
				prev[e.To] = cur.node
				heap.Push(pq, &item{node: e.To, dist: alt})
			}
		}
	}

	d, ok := dist[target]
	if !ok {
		return PathResult{}, false, nil
	}

	path := []string{target}
	for node := target; node != start; {
		node = prev[node]
		path = append(path, node)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return PathResult{Distance: d, Path: path}, true, nil
}

type item struct {
	node string
	dist float64
	seq  int
}

// queue - бинарная куча по расстоянию, при равенстве - по порядку вставки
type queue struct {
	items []*item
	seq   int
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	if q.items[i].dist == q.items[j].dist {
		return q.items[i].seq < q.items[j].seq
	}
	return q.items[i].dist < q.items[j].dist
}

func (q *queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue) Push(x any) {
	it := x.(*item)
	it.seq = q.seq
	q.seq++
	q.items = append(q.items, it)
}

func (q *queue) Pop() any {
	old := q.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return it
}
