package spatial

import (
	"sort"
	"strings"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
)

// MaxEdgeWidth caps the drawn width of a passing lane.
const MaxEdgeWidth = 6

// Node is a player placed at the mean origin of their completed passes.
type Node struct {
	PlayerID int64
	Player   string
	Label    string
	X        float64
	Y        float64
	Passes   int
}

// Edge is a directed passer to recipient lane.
type Edge struct {
	FromID int64
	From   string
	ToID   int64
	To     string
	Count  int
	Width  int
}

// Network is a team's passing graph for one match.
type Network struct {
	Team  string
	Nodes []Node
	Edges []Edge
}

type playerKey struct {
	id   int64
	name string
}

func keyOf(id int64, name string) playerKey {
	if id != 0 {
		return playerKey{id: id}
	}
	return playerKey{name: name}
}

// PassNetwork builds the graph from a team's completed, fully located passes
// with a known passer. Edges are kept only when both ends have a node.
func PassNetwork(team string, events []event.Event) Network {
	net := Network{Team: team, Nodes: make([]Node, 0), Edges: make([]Edge, 0)}

	type acc struct {
		node   Node
		sumX   float64
		sumY   float64
		weight int
	}
	nodes := make(map[playerKey]*acc)
	nodeOrder := make([]playerKey, 0)
	type lane struct{ from, to playerKey }
	lanes := make(map[lane]*Edge)
	laneOrder := make([]lane, 0)

	for _, e := range events {
		if e.Team != team || !e.IsCompletedPass() || e.Location == nil || e.Pass.EndLocation == nil {
			continue
		}
		if e.PlayerID == 0 && e.Player == "" {
			continue
		}
		from := keyOf(e.PlayerID, e.Player)
		a, ok := nodes[from]
		if !ok {
			a = &acc{node: Node{PlayerID: e.PlayerID, Player: e.Player, Label: shortName(e.Player)}}
			nodes[from] = a
			nodeOrder = append(nodeOrder, from)
		}
		display := e.Location.FlipY()
		a.sumX += display.X
		a.sumY += display.Y
		a.weight++

		if e.Pass.RecipientID == 0 && e.Pass.Recipient == "" {
			continue
		}
		l := lane{from: from, to: keyOf(e.Pass.RecipientID, e.Pass.Recipient)}
		edge, ok := lanes[l]
		if !ok {
			edge = &Edge{FromID: e.PlayerID, From: e.Player, ToID: e.Pass.RecipientID, To: e.Pass.Recipient}
			lanes[l] = edge
			laneOrder = append(laneOrder, l)
		}
		edge.Count++
	}

	for _, k := range nodeOrder {
		a := nodes[k]
		a.node.X = a.sumX / float64(a.weight)
		a.node.Y = a.sumY / float64(a.weight)
		a.node.Passes = a.weight
		net.Nodes = append(net.Nodes, a.node)
	}
	for _, l := range laneOrder {
		if _, ok := nodes[l.to]; !ok {
			continue
		}
		edge := lanes[l]
		edge.Width = min(edge.Count, MaxEdgeWidth)
		net.Edges = append(net.Edges, *edge)
	}
	sort.SliceStable(net.Edges, func(i, j int) bool { return net.Edges[i].Count > net.Edges[j].Count })
	return net
}

func shortName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
