// Package analyzer builds the conflict graph over a produced schedule and
// reports the utilization, load, chromatic-bound, and suggestion metrics
// spec.md §4.6 calls for.
package analyzer

import (
	"sort"

	"github.com/noah-isme/schedule-engine/internal/domain"
	"github.com/noah-isme/schedule-engine/internal/models"
)

// Graph is an undirected conflict graph over schedule entries: vertices
// are entry indices, edges connect entries that overlap in time and
// share a faculty or classroom.
type Graph struct {
	Entries   []models.ScheduleEntry
	Adjacency map[int]map[int]struct{}
}

// Build constructs the conflict graph for entries. In a valid schedule
// this graph has no edges (I1/I2 forbid exactly the relation it encodes);
// it exists to surface a violation-producing bug or an externally
// supplied schedule for inspection.
func Build(entries []models.ScheduleEntry) *Graph {
	g := &Graph{Entries: entries, Adjacency: make(map[int]map[int]struct{}, len(entries))}
	for i := range entries {
		g.Adjacency[i] = make(map[int]struct{})
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if conflicts(entries[i], entries[j]) {
				g.addEdge(i, j)
			}
		}
	}
	return g
}

func conflicts(a, b models.ScheduleEntry) bool {
	if !a.TimeSlot.Overlaps(b.TimeSlot) {
		return false
	}
	return a.FacultyID == b.FacultyID || a.ClassroomID == b.ClassroomID
}

func (g *Graph) addEdge(i, j int) {
	g.Adjacency[i][j] = struct{}{}
	g.Adjacency[j][i] = struct{}{}
}

// Degree reports a vertex's neighbor count.
func (g *Graph) Degree(i int) int { return len(g.Adjacency[i]) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	total := 0
	for _, adj := range g.Adjacency {
		total += len(adj)
	}
	return total / 2
}

// ChromaticLowerBound returns the size of the largest clique found by a
// bounded greedy search: visit vertices highest-degree first, grow a
// clique greedily, stop expanding once the clique reaches the bound
// (spec.md §4.6: "bound at 6 to keep cost linear").
const cliqueBound = 6

func (g *Graph) ChromaticLowerBound() int {
	if len(g.Entries) == 0 {
		return 0
	}
	order := make([]int, 0, len(g.Entries))
	for i := range g.Entries {
		order = append(order, i)
	}
	sort.Slice(order, func(a, b int) bool {
		if g.Degree(order[a]) != g.Degree(order[b]) {
			return g.Degree(order[a]) > g.Degree(order[b])
		}
		return order[a] < order[b]
	})

	best := 1
	for _, start := range order {
		clique := g.growClique(start, order)
		if len(clique) > best {
			best = len(clique)
		}
		if best >= cliqueBound {
			return cliqueBound
		}
	}
	return best
}

// growClique greedily extends a clique from start, considering
// candidates in the same highest-degree-first order, stopping at
// cliqueBound.
func (g *Graph) growClique(start int, order []int) []int {
	clique := []int{start}
	for _, cand := range order {
		if cand == start {
			continue
		}
		if len(clique) >= cliqueBound {
			break
		}
		if g.adjacentToAll(cand, clique) {
			clique = append(clique, cand)
		}
	}
	return clique
}

func (g *Graph) adjacentToAll(cand int, clique []int) bool {
	for _, member := range clique {
		if _, ok := g.Adjacency[member][cand]; !ok {
			return false
		}
	}
	return true
}

// RoomUtilization is the fraction of (room, canonical time-slot) pairs
// occupied by a scheduled entry.
func RoomUtilization(entries []models.ScheduleEntry, es domain.EntitySet) float64 {
	slots := es.CanonicalTimeSlots()
	denominator := len(es.Classrooms) * len(slots)
	if denominator == 0 {
		return 0
	}
	occupied := make(map[[2]string]struct{})
	for _, e := range entries {
		for _, s := range slots {
			if s.Overlaps(e.TimeSlot) {
				occupied[[2]string{e.ClassroomID, slotKey(s)}] = struct{}{}
			}
		}
	}
	return float64(len(occupied)) / float64(denominator)
}

func slotKey(t models.TimeSlot) string {
	return string(t.Day) + ":" + t.Start.String() + "-" + t.End.String()
}

// FacultyLoad sums assigned minutes per faculty ID.
func FacultyLoad(entries []models.ScheduleEntry) map[string]int {
	load := make(map[string]int)
	for _, e := range entries {
		load[e.FacultyID] += e.TimeSlot.DurationMinutes()
	}
	return load
}
