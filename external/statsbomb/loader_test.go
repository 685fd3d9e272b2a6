package statsbomb

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const twoMatches = `[
  {"match_id": 1, "match_week": 1, "home_team": {"home_team_name": "Barcelona"}, "away_team": {"away_team_name": "Real Madrid"}, "home_score": 1, "away_score": 0},
  {"match_id": 2, "match_week": 1, "home_team": {"home_team_name": "Eibar"}, "away_team": {"away_team_name": "Getafe"}, "home_score": 0, "away_score": 0}
]`

func seasonFS() fstest.MapFS {
	return fstest.MapFS{
		"matches/11/27.json": {Data: []byte(twoMatches)},
		"events/1.json":      {Data: []byte(eventsJSON)},
		"lineups/1.json":     {Data: []byte(lineupsJSON)},
		"events/2.json":      {Data: []byte(`[{"id":"e","type":{"name":"Half End"},"period":1,"minute":45}]`)},
		"lineups/2.json":     {Data: []byte(`[]`)},
	}
}

func TestLoaderLoad(t *testing.T) {
	t.Parallel()

	loader := NewLoader(seasonFS(), LoaderConfig{Workers: 2})
	snapshot, err := loader.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Matches, 2)
	require.Len(t, snapshot.Events, 6)
	require.Len(t, snapshot.Lineups, 3)
	require.Empty(t, snapshot.Skipped)

	// events are grouped by match id regardless of worker completion order
	require.Equal(t, int64(1), snapshot.Events[0].MatchID)
	require.Equal(t, int64(2), snapshot.Events[5].MatchID)
}

func TestLoaderSkipsBrokenMatch(t *testing.T) {
	t.Parallel()

	fsys := seasonFS()
	fsys["events/2.json"] = &fstest.MapFile{Data: []byte(`{broken`)}

	snapshot, err := NewLoader(fsys, LoaderConfig{}).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, snapshot.Matches, 1)
	require.Equal(t, []int64{2}, snapshot.Skipped)
	require.Len(t, snapshot.Events, 5)
}

func TestLoaderStrict(t *testing.T) {
	t.Parallel()

	fsys := seasonFS()
	delete(fsys, "lineups/2.json")

	_, err := NewLoader(fsys, LoaderConfig{Strict: true}).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "match_id=2")
}

func TestLoaderMissingSeason(t *testing.T) {
	t.Parallel()

	_, err := NewLoader(fstest.MapFS{}, LoaderConfig{SeasonID: 99}).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "matches/11/99.json")
}
