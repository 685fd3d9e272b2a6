package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/lib/pq"
	"github.com/riskibarqy/laliga-insights/external/statsbomb"
	qb "github.com/riskibarqy/laliga-insights/internal/platform/querybuilder"
)

type ImportResult struct {
	Matches int
	Events  int
	Lineups int
}

// Import writes a decoded snapshot in one transaction. Matches are upserted;
// events and lineups of the imported matches are replaced through COPY.
func (s *Store) Import(ctx context.Context, snapshot statsbomb.Snapshot, competitionID, seasonID int) (ImportResult, error) {
	var result ImportResult
	if len(snapshot.Matches) == 0 {
		return result, nil
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	matchIDs := make([]int64, 0, len(snapshot.Matches))
	for _, m := range snapshot.Matches {
		query, args, err := qb.InsertModel("matches", matchToRow(m, competitionID, seasonID), `
ON CONFLICT (match_id) DO UPDATE SET
	match_week = EXCLUDED.match_week,
	match_date = EXCLUDED.match_date,
	kick_off = EXCLUDED.kick_off,
	home_score = EXCLUDED.home_score,
	away_score = EXCLUDED.away_score,
	stadium = EXCLUDED.stadium,
	referee = EXCLUDED.referee`)
		if err != nil {
			return result, fmt.Errorf("build upsert match id=%d query: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return result, fmt.Errorf("upsert match id=%d: %w", m.ID, err)
		}
		matchIDs = append(matchIDs, m.ID)
		result.Matches++
	}

	for _, table := range []string{"events", "lineups"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE match_id = ANY($1)", pq.Array(matchIDs)); err != nil {
			return result, fmt.Errorf("clear %s: %w", table, err)
		}
	}

	eventStmt, err := tx.PrepareContext(ctx, pq.CopyIn("events", eventColumns...))
	if err != nil {
		return result, fmt.Errorf("prepare events copy: %w", err)
	}
	for _, e := range snapshot.Events {
		payload, err := statsbomb.EncodeEvent(e)
		if err != nil {
			_ = eventStmt.Close()
			return result, err
		}
		if _, err := eventStmt.ExecContext(ctx, e.ID, e.MatchID, e.Index, string(e.Type), e.Team, pq.Array(actorIDs(e)), string(payload)); err != nil {
			_ = eventStmt.Close()
			return result, fmt.Errorf("copy event id=%s: %w", e.ID, err)
		}
		result.Events++
	}
	if _, err := eventStmt.ExecContext(ctx); err != nil {
		_ = eventStmt.Close()
		return result, fmt.Errorf("flush events copy: %w", err)
	}
	if err := eventStmt.Close(); err != nil {
		return result, fmt.Errorf("close events copy: %w", err)
	}

	for _, entry := range snapshot.Lineups {
		cards, err := sonic.Marshal(cardsToModel(entry.Cards))
		if err != nil {
			return result, fmt.Errorf("encode cards player_id=%d: %w", entry.PlayerID, err)
		}
		query, args, err := qb.InsertModel("lineups", lineupInsertModel{
			MatchID:        entry.MatchID,
			PlayerID:       entry.PlayerID,
			PlayerName:     entry.PlayerName,
			PlayerNickname: entry.Nickname,
			Team:           entry.Team,
			JerseyNumber:   entry.JerseyNumber,
			Country:        entry.Country,
			Cards:          cards,
		}, "")
		if err != nil {
			return result, fmt.Errorf("build insert lineup query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return result, fmt.Errorf("insert lineup match_id=%d player_id=%d: %w", entry.MatchID, entry.PlayerID, err)
		}
		result.Lineups++
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("commit import tx: %w", err)
	}
	return result, nil
}
