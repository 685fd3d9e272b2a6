package statsbomb

import (
	"context"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/platform/logging"
)

const (
	DefaultCompetitionID = 11
	DefaultSeasonID      = 27

	defaultWorkers = 8
)

// Snapshot is one season of matches, events and lineups.
type Snapshot struct {
	Matches []match.Match
	Events  []event.Event
	Lineups []lineup.Entry
	Skipped []int64
}

type LoaderConfig struct {
	CompetitionID int
	SeasonID      int
	Workers       int
	// Strict fails the whole load when a single match cannot be decoded.
	Strict bool
	Logger *logging.Logger
}

// Loader reads the open-data directory layout:
//
//	matches/<competition>/<season>.json
//	events/<match>.json
//	lineups/<match>.json
type Loader struct {
	fsys          fs.FS
	competitionID int
	seasonID      int
	workers       int
	strict        bool
	logger        *logging.Logger
}

func NewLoader(fsys fs.FS, cfg LoaderConfig) *Loader {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	l := &Loader{
		fsys:          fsys,
		competitionID: cfg.CompetitionID,
		seasonID:      cfg.SeasonID,
		workers:       cfg.Workers,
		strict:        cfg.Strict,
		logger:        logger,
	}
	if l.competitionID <= 0 {
		l.competitionID = DefaultCompetitionID
	}
	if l.seasonID <= 0 {
		l.seasonID = DefaultSeasonID
	}
	if l.workers <= 0 {
		l.workers = defaultWorkers
	}
	return l
}

type matchFiles struct {
	matchID int64
	events  []event.Event
	lineups []lineup.Entry
	err     error
}

// Load decodes the season. Matches whose files fail to decode are logged and
// listed in Snapshot.Skipped unless the loader is strict.
func (l *Loader) Load(ctx context.Context) (Snapshot, error) {
	start := time.Now()

	matchesPath := path.Join("matches", strconv.Itoa(l.competitionID), strconv.Itoa(l.seasonID)+".json")
	raw, err := fs.ReadFile(l.fsys, matchesPath)
	if err != nil {
		return Snapshot{}, crerr.Wrapf(err, "read %s", matchesPath)
	}
	matches, err := DecodeMatches(raw)
	if err != nil {
		return Snapshot{}, err
	}

	pool, err := ants.NewPool(l.workers)
	if err != nil {
		return Snapshot{}, crerr.Wrap(err, "create loader pool")
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		results = make([]matchFiles, 0, len(matches))
		wg      sync.WaitGroup
	)
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return Snapshot{}, err
		}
		matchID := m.ID
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			files := l.loadMatch(matchID)
			mu.Lock()
			results = append(results, files)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			wg.Wait()
			return Snapshot{}, crerr.Wrapf(err, "submit match_id=%d", matchID)
		}
	}
	wg.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].matchID < results[j].matchID })

	snapshot := Snapshot{Matches: make([]match.Match, 0, len(matches))}
	failed := make(map[int64]bool)
	for _, files := range results {
		if files.err != nil {
			if l.strict {
				return Snapshot{}, files.err
			}
			l.logger.WarnContext(ctx, "skip statsbomb match", "match_id", files.matchID, "error", files.err)
			failed[files.matchID] = true
			snapshot.Skipped = append(snapshot.Skipped, files.matchID)
			continue
		}
		snapshot.Events = append(snapshot.Events, files.events...)
		snapshot.Lineups = append(snapshot.Lineups, files.lineups...)
	}
	for _, m := range matches {
		if !failed[m.ID] {
			snapshot.Matches = append(snapshot.Matches, m)
		}
	}

	l.logger.InfoContext(ctx, "statsbomb snapshot loaded",
		"competition_id", l.competitionID,
		"season_id", l.seasonID,
		"matches", len(snapshot.Matches),
		"events", len(snapshot.Events),
		"lineups", len(snapshot.Lineups),
		"skipped", len(snapshot.Skipped),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return snapshot, nil
}

func (l *Loader) loadMatch(matchID int64) matchFiles {
	files := matchFiles{matchID: matchID}
	name := strconv.FormatInt(matchID, 10) + ".json"

	raw, err := fs.ReadFile(l.fsys, path.Join("events", name))
	if err != nil {
		files.err = crerr.Wrapf(err, "read events match_id=%d", matchID)
		return files
	}
	if files.events, err = DecodeEvents(matchID, raw); err != nil {
		files.err = err
		return files
	}

	raw, err = fs.ReadFile(l.fsys, path.Join("lineups", name))
	if err != nil {
		files.err = crerr.Wrapf(err, "read lineups match_id=%d", matchID)
		return files
	}
	if files.lineups, err = DecodeLineups(matchID, raw); err != nil {
		files.err = err
	}
	return files
}
