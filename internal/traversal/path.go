package traversal

import (
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

// PathStep is one node along a shortest/k-shortest path, per spec.md §4.6.
// The start step carries no RelType/Direction since it has no incoming hop.
type PathStep struct {
	NodeID      graphstore.NodeID
	Label       string
	AppID       string
	HasAppID    bool
	RelType     string
	HasRelType  bool
	Direction   graphstore.Direction
	HasDirection bool
}

// Path is an ordered sequence of steps from start to target, inclusive.
type Path []PathStep

// NodeIDs extracts the node-id sequence of a path, used for Yen's
// simplicity and distinctness checks.
func (p Path) NodeIDs() []graphstore.NodeID {
	ids := make([]graphstore.NodeID, len(p))
	for i, step := range p {
		ids[i] = step.NodeID
	}
	return ids
}

func sameNodeSequence(a, b []graphstore.NodeID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// reconstructNeighborPath walks visited's parent pointers from node back to
// start, collecting the relationship-type name and traversed direction at
// each hop, then reverses them so index 0 is the hop out of start.
func reconstructNeighborPath(store *graphstore.Store, visited map[graphstore.NodeID]visitEntry, start, node graphstore.NodeID) ([]string, []graphstore.Direction) {
	var types []string
	var dirs []graphstore.Direction

	current := node
	for current != start {
		entry := visited[current]
		name, _ := store.RelTypeName(entry.relType)
		types = append(types, name)
		dirs = append(dirs, entry.direction)
		current = entry.parent
	}

	reverseStrings(types)
	reverseDirections(dirs)
	return types, dirs
}

// reconstructPathSteps walks visited's parent pointers from target back to
// start, building the full PathStep sequence (including both endpoints)
// required by ShortestPath / Yen's algorithm.
func reconstructPathSteps(store *graphstore.Store, visited map[graphstore.NodeID]visitEntry, start, target graphstore.NodeID) Path {
	var steps []PathStep

	current := target
	for {
		info, _ := store.Node(current)
		step := PathStep{
			NodeID:   current,
			Label:    info.Label,
			AppID:    info.AppID,
			HasAppID: info.HasAppID,
		}
		if current != start {
			entry := visited[current]
			name, ok := store.RelTypeName(entry.relType)
			if ok {
				step.RelType = name
				step.HasRelType = true
			}
			step.Direction = entry.direction
			step.HasDirection = true
		}
		steps = append(steps, step)

		if current == start {
			break
		}
		current = visited[current].parent
	}

	reverseSteps(steps)
	return steps
}

func reverseStrings(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseDirections(s []graphstore.Direction) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func reverseSteps(s []PathStep) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
