// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-golf/internal/golf"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundRecord is one saved round with its scorecard.
type RoundRecord struct {
	ID          string // uuid
	GameID      string // registry id, e.g. "golf_physics"
	Variant     string
	Layout      string
	Seed        int64
	TotalPar    int
	Par         []int // per hole
	Ticks       int64
	Winner      string
	WinnerTotal int
	Players     []PlayerRecord
	CreatedAt   time.Time
}

// PlayerRecord is one scorecard row of a saved round.
type PlayerRecord struct {
	PlayerID int
	Name     string
	Style    string
	Strokes  []int
	Total    int
	ToPar    int
	Finished bool
	Winner   bool
}

// LeaderEntry is one finished player on the leaderboard.
type LeaderEntry struct {
	RoundID   string
	GameID    string
	Name      string
	Style     string
	Total     int
	ToPar     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			variant TEXT NOT NULL,
			layout TEXT NOT NULL DEFAULT '',
			seed INTEGER NOT NULL DEFAULT 0,
			total_par INTEGER NOT NULL,
			par TEXT NOT NULL DEFAULT '',
			ticks INTEGER NOT NULL DEFAULT 0,
			winner TEXT NOT NULL DEFAULT '',
			winner_total INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);

		CREATE TABLE IF NOT EXISTS round_players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL REFERENCES rounds(id),
			player_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			style TEXT NOT NULL DEFAULT '',
			strokes TEXT NOT NULL,
			total INTEGER NOT NULL,
			to_par INTEGER NOT NULL,
			finished INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_round_players_round ON round_players(round_id);
		CREATE INDEX IF NOT EXISTS idx_round_players_total ON round_players(total ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a round and its players in one transaction.
// A missing ID is filled with a new uuid. Returns the round ID.
func (s *Store) SaveRound(r RoundRecord) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	_, err = tx.Exec(
		`INSERT INTO rounds
		 (id, game_id, variant, layout, seed, total_par, par, ticks, winner, winner_total)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.GameID, r.Variant, r.Layout, r.Seed, r.TotalPar, encodeStrokes(r.Par), r.Ticks, r.Winner, r.WinnerTotal,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}

	for _, p := range r.Players {
		_, err = tx.Exec(
			`INSERT INTO round_players
			 (round_id, player_id, name, style, strokes, total, to_par, finished, winner)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, p.PlayerID, p.Name, p.Style, encodeStrokes(p.Strokes), p.Total, p.ToPar, p.Finished, p.Winner,
		)
		if err != nil {
			return "", fmt.Errorf("storage: cannot save player %q: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("storage: cannot commit round: %w", err)
	}
	return r.ID, nil
}

// SaveSummary stores a finished session scorecard under gameID.
func (s *Store) SaveSummary(gameID, layout string, seed int64, sum golf.Summary) (string, error) {
	r := RoundRecord{
		GameID:   gameID,
		Variant:  sum.Variant.String(),
		Layout:   layout,
		Seed:     seed,
		TotalPar: sum.TotalPar,
		Par:      sum.Par,
		Ticks:    int64(sum.Ticks), //#nosec G115 -- tick counts fit easily
	}
	for _, p := range sum.Players {
		r.Players = append(r.Players, PlayerRecord{
			PlayerID: p.ID,
			Name:     p.Name,
			Style:    p.Style,
			Strokes:  p.Strokes,
			Total:    p.Total,
			ToPar:    p.ToPar,
			Finished: p.Finished,
			Winner:   p.Winner,
		})
		if p.Winner {
			r.Winner = p.Name
			r.WinnerTotal = p.Total
		}
	}
	return s.SaveRound(r)
}

// Summary rebuilds the scorecard of a saved round.
func (r RoundRecord) Summary() golf.Summary {
	variant, _ := golf.ParseVariant(r.Variant) //nolint:errcheck // stored by SaveSummary
	sum := golf.Summary{
		Variant:  variant,
		Par:      r.Par,
		TotalPar: r.TotalPar,
		Ticks:    uint64(max(r.Ticks, 0)), //#nosec G115 -- clamped above
		Over:     true,
	}
	for _, p := range r.Players {
		sum.Players = append(sum.Players, golf.PlayerSummary{
			ID:       p.PlayerID,
			Name:     p.Name,
			Style:    p.Style,
			Strokes:  p.Strokes,
			Total:    p.Total,
			ToPar:    p.ToPar,
			Finished: p.Finished,
			Winner:   p.Winner,
		})
	}
	return sum
}

// RoundByID retrieves a round with its players. Returns nil if not found.
func (s *Store) RoundByID(id string) (*RoundRecord, error) {
	var r RoundRecord
	var par string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, game_id, variant, layout, seed, total_par, par, ticks, winner, winner_total, created_at
		 FROM rounds
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.GameID, &r.Variant, &r.Layout, &r.Seed, &r.TotalPar, &par, &r.Ticks, &r.Winner, &r.WinnerTotal, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query round: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	if r.Par, err = decodeStrokes(par); err != nil {
		return nil, fmt.Errorf("storage: round %s par: %w", r.ID, err)
	}

	players, err := s.roundPlayers(r.ID)
	if err != nil {
		return nil, err
	}
	r.Players = players
	return &r, nil
}

// RecentRounds retrieves the most recent rounds, newest first. An empty
// gameID matches every variant.
func (s *Store) RecentRounds(gameID string, limit int) ([]RoundRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, variant, layout, seed, total_par, par, ticks, winner, winner_total, created_at
		 FROM rounds
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundRecord
	for rows.Next() {
		var r RoundRecord
		var par string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Variant, &r.Layout, &r.Seed, &r.TotalPar, &par, &r.Ticks, &r.Winner, &r.WinnerTotal, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		if r.Par, err = decodeStrokes(par); err != nil {
			return nil, fmt.Errorf("storage: round %s par: %w", r.ID, err)
		}
		rounds = append(rounds, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range rounds {
		players, err := s.roundPlayers(rounds[i].ID)
		if err != nil {
			return nil, err
		}
		rounds[i].Players = players
	}
	return rounds, nil
}

func (s *Store) roundPlayers(roundID string) ([]PlayerRecord, error) {
	rows, err := s.db.Query(
		`SELECT player_id, name, style, strokes, total, to_par, finished, winner
		 FROM round_players
		 WHERE round_id = ?
		 ORDER BY player_id`,
		roundID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query players: %w", err)
	}
	defer rows.Close()

	var players []PlayerRecord
	for rows.Next() {
		var p PlayerRecord
		var strokes string
		if err := rows.Scan(&p.PlayerID, &p.Name, &p.Style, &strokes, &p.Total, &p.ToPar, &p.Finished, &p.Winner); err != nil {
			return nil, fmt.Errorf("storage: cannot scan player: %w", err)
		}
		p.Strokes, err = decodeStrokes(strokes)
		if err != nil {
			return nil, fmt.Errorf("storage: round %s player %q: %w", roundID, p.Name, err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return players, nil
}

// Leaderboard returns the best finished cards, lowest total first. Ties go
// to the earlier round. An empty gameID matches every variant.
func (s *Store) Leaderboard(gameID string, limit int) ([]LeaderEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT r.id, r.game_id, p.name, p.style, p.total, p.to_par, r.created_at
		 FROM round_players p
		 JOIN rounds r ON r.id = p.round_id
		 WHERE p.finished = 1 AND (? = '' OR r.game_id = ?)
		 ORDER BY p.total ASC, r.created_at ASC, p.id ASC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []LeaderEntry
	for rows.Next() {
		var e LeaderEntry
		var createdAt any
		if err := rows.Scan(&e.RoundID, &e.GameID, &e.Name, &e.Style, &e.Total, &e.ToPar, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// BestTotal returns the lowest finished total for the given game.
// The bool is false when no finished cards exist.
func (s *Store) BestTotal(gameID string) (int, bool, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MIN(p.total)
		 FROM round_players p
		 JOIN rounds r ON r.id = p.round_id
		 WHERE p.finished = 1 AND r.game_id = ?`,
		gameID,
	).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot get best total: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return int(best.Int64), true, nil
}

// ClearRounds deletes all rounds for the given game.
func (s *Store) ClearRounds(gameID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(
		"DELETE FROM round_players WHERE round_id IN (SELECT id FROM rounds WHERE game_id = ?)",
		gameID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear players: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM rounds WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Rounds     int
	BestTotal  int
	AvgTotal   float64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(winner_total), 0), COALESCE(AVG(winner_total), 0)
		 FROM rounds WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Rounds, &stats.BestTotal, &stats.AvgTotal)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MIN(winner_total), AVG(winner_total), MAX(created_at)
		 FROM rounds
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var gs GameStats
		var lastPlayed any
		if err := rows.Scan(&gs.GameID, &gs.Rounds, &gs.BestTotal, &gs.AvgTotal, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(lastPlayed)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func encodeStrokes(strokes []int) string {
	parts := make([]string, len(strokes))
	for i, n := range strokes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func decodeStrokes(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad stroke list %q: %w", s, err)
		}
		out[i] = n
	}
	return out, nil
}
