package team

import (
	"sort"
	"strings"
)

// Registry maps team names to internal ids. It is built once and never mutated.
type Registry struct {
	byName  map[string]Team
	byID    map[int]Team
	ordered []Team
}

var laLiga2015 = NewRegistry([]Team{
	{ID: 1, Name: "Levante UD"},
	{ID: 2, Name: "Las Palmas"},
	{ID: 3, Name: "RC Deportivo La Coruña"},
	{ID: 4, Name: "Málaga"},
	{ID: 5, Name: "Espanyol"},
	{ID: 6, Name: "Sporting Gijón"},
	{ID: 7, Name: "Rayo Vallecano"},
	{ID: 8, Name: "Real Betis"},
	{ID: 9, Name: "Athletic Club"},
	{ID: 10, Name: "Atlético Madrid"},
	{ID: 11, Name: "Valencia"},
	{ID: 12, Name: "Eibar"},
	{ID: 13, Name: "Getafe"},
	{ID: 14, Name: "Villarreal"},
	{ID: 15, Name: "Sevilla"},
	{ID: 16, Name: "Granada"},
	{ID: 17, Name: "Real Sociedad"},
	{ID: 18, Name: "Celta Vigo"},
	{ID: 19, Name: "Real Madrid"},
	{ID: 20, Name: "Barcelona"},
})

// LaLiga2015 returns the shared registry of the 2015/16 La Liga season.
func LaLiga2015() *Registry {
	return laLiga2015
}

// NewRegistry builds a registry from a fixed team list. Later duplicates are ignored.
func NewRegistry(teams []Team) *Registry {
	r := &Registry{
		byName:  make(map[string]Team, len(teams)),
		byID:    make(map[int]Team, len(teams)),
		ordered: make([]Team, 0, len(teams)),
	}
	for _, t := range teams {
		name := strings.TrimSpace(t.Name)
		if name == "" || t.ID <= 0 {
			continue
		}
		if _, exists := r.byName[name]; exists {
			continue
		}
		if _, exists := r.byID[t.ID]; exists {
			continue
		}
		t.Name = name
		r.byName[name] = t
		r.byID[t.ID] = t
		r.ordered = append(r.ordered, t)
	}
	sort.SliceStable(r.ordered, func(i, j int) bool { return r.ordered[i].ID < r.ordered[j].ID })

	return r
}

func (r *Registry) ByName(name string) (Team, bool) {
	t, ok := r.byName[strings.TrimSpace(name)]
	return t, ok
}

func (r *Registry) ByID(id int) (Team, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// IDOf returns the internal id of a team name, or 0 when the name is not registered.
func (r *Registry) IDOf(name string) int {
	return r.byName[strings.TrimSpace(name)].ID
}

// All returns a copy of the registered teams ordered by id.
func (r *Registry) All() []Team {
	out := make([]Team, len(r.ordered))
	copy(out, r.ordered)
	return out
}

func (r *Registry) Len() int {
	return len(r.ordered)
}
