// Package stats persists play statistics and evaluates achievements over a
// small sqlite database. The tracker is constructed explicitly and injected;
// it receives only genre ids and word maps, never story segments.
package stats

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/madverse/madverse/pkg/story"
	_ "modernc.org/sqlite"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS stories (
    id TEXT PRIMARY KEY,
    genre TEXT NOT NULL,
    played_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS words (
    word TEXT PRIMARY KEY,
    count INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS counters (
    name TEXT PRIMARY KEY,
    value INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS achievements (
    id TEXT PRIMARY KEY,
    unlocked_at TEXT NOT NULL
);
`

const (
	counterSaves         = "stories_saved"
	counterRegenerations = "regenerations"
)

// Tracker records plays, saves and regenerations. Session counts live in
// memory only; everything else goes to sqlite.
type Tracker struct {
	db      *sql.DB
	session int
}

// Open opens (and if needed initializes) the stats database at path.
func Open(path string) (*Tracker, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Tracker{db: db}, nil
}

func (t *Tracker) Close() error {
	return t.db.Close()
}

// RecordStory logs one played story and returns any achievements it
// unlocked. Word tracking is case-insensitive; blank values are skipped.
func (t *Tracker) RecordStory(genreID string, words story.WordMap) ([]Achievement, error) {
	tx, err := t.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT INTO stories(id, genre, played_at) VALUES(?,?,?)`,
		uuid.NewString(), genreID, time.Now().Format(time.RFC3339),
	); err != nil {
		return nil, fmt.Errorf("insert story: %w", err)
	}

	for _, v := range words {
		w := strings.ToLower(strings.TrimSpace(v))
		if w == "" {
			continue
		}
		if _, err := tx.Exec(
			`INSERT INTO words(word, count) VALUES(?,1)
			 ON CONFLICT(word) DO UPDATE SET count = count + 1`, w,
		); err != nil {
			return nil, fmt.Errorf("upsert word: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	t.session++
	return t.unlockNew()
}

// RecordSave logs a story export and returns newly unlocked achievements.
func (t *Tracker) RecordSave() ([]Achievement, error) {
	if err := t.bumpCounter(counterSaves); err != nil {
		return nil, err
	}
	return t.unlockNew()
}

// RecordRegeneration logs a same-words regeneration.
func (t *Tracker) RecordRegeneration() ([]Achievement, error) {
	if err := t.bumpCounter(counterRegenerations); err != nil {
		return nil, err
	}
	return t.unlockNew()
}

func (t *Tracker) bumpCounter(name string) error {
	_, err := t.db.Exec(
		`INSERT INTO counters(name, value) VALUES(?,1)
		 ON CONFLICT(name) DO UPDATE SET value = value + 1`, name,
	)
	if err != nil {
		return fmt.Errorf("bump counter %s: %w", name, err)
	}
	return nil
}

func (t *Tracker) counter(name string) (int, error) {
	var v int
	err := t.db.QueryRow(`SELECT value FROM counters WHERE name = ?`, name).Scan(&v)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read counter %s: %w", name, err)
	}
	return v, nil
}

// Snapshot is the flat view of the stored stats that achievement rules are
// evaluated against.
type Snapshot struct {
	TotalStories   int
	SessionStories int
	Saves          int
	Regenerations  int
	DistinctGenres int
	MaxWordCount   int
	GenreCounts    map[string]int
	WordCounts     map[string]int
}

func (t *Tracker) snapshot() (Snapshot, error) {
	s := Snapshot{
		SessionStories: t.session,
		GenreCounts:    make(map[string]int),
		WordCounts:     make(map[string]int),
	}

	rows, err := t.db.Query(`SELECT genre, COUNT(*) FROM stories GROUP BY genre`)
	if err != nil {
		return s, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var genre string
		var count int
		if err := rows.Scan(&genre, &count); err != nil {
			return s, fmt.Errorf("scan genre row: %w", err)
		}
		s.GenreCounts[genre] = count
		s.TotalStories += count
	}
	if err := rows.Err(); err != nil {
		return s, fmt.Errorf("genre rows: %w", err)
	}
	s.DistinctGenres = len(s.GenreCounts)

	wordRows, err := t.db.Query(`SELECT word, count FROM words`)
	if err != nil {
		return s, fmt.Errorf("query words: %w", err)
	}
	defer wordRows.Close()
	for wordRows.Next() {
		var word string
		var count int
		if err := wordRows.Scan(&word, &count); err != nil {
			return s, fmt.Errorf("scan word row: %w", err)
		}
		s.WordCounts[word] = count
		if count > s.MaxWordCount {
			s.MaxWordCount = count
		}
	}
	if err := wordRows.Err(); err != nil {
		return s, fmt.Errorf("word rows: %w", err)
	}

	if s.Saves, err = t.counter(counterSaves); err != nil {
		return s, err
	}
	if s.Regenerations, err = t.counter(counterRegenerations); err != nil {
		return s, err
	}
	return s, nil
}

// unlockNew evaluates every rule against the current snapshot and persists
// the ones that just became true.
func (t *Tracker) unlockNew() ([]Achievement, error) {
	snap, err := t.snapshot()
	if err != nil {
		return nil, err
	}
	unlocked, err := t.UnlockedIDs()
	if err != nil {
		return nil, err
	}

	var newly []Achievement
	for _, a := range Achievements() {
		if unlocked[a.ID] || !a.Met(snap) {
			continue
		}
		if _, err := t.db.Exec(
			`INSERT INTO achievements(id, unlocked_at) VALUES(?,?)`,
			a.ID, time.Now().Format(time.RFC3339),
		); err != nil {
			return nil, fmt.Errorf("unlock achievement %s: %w", a.ID, err)
		}
		newly = append(newly, a)
	}
	return newly, nil
}

// UnlockedIDs returns the set of achievement ids unlocked so far.
func (t *Tracker) UnlockedIDs() (map[string]bool, error) {
	rows, err := t.db.Query(`SELECT id FROM achievements`)
	if err != nil {
		return nil, fmt.Errorf("query achievements: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan achievement row: %w", err)
		}
		ids[id] = true
	}
	return ids, rows.Err()
}

// Summary is the aggregate view shown by the stats command.
type Summary struct {
	TotalStories         int
	StoriesSaved         int
	Regenerations        int
	FavoriteGenre        string
	MostUsedWord         string
	GenresPlayed         int
	AchievementsUnlocked int
	TotalAchievements    int
}

func (t *Tracker) Summary() (Summary, error) {
	snap, err := t.snapshot()
	if err != nil {
		return Summary{}, err
	}
	unlocked, err := t.UnlockedIDs()
	if err != nil {
		return Summary{}, err
	}

	sum := Summary{
		TotalStories:         snap.TotalStories,
		StoriesSaved:         snap.Saves,
		Regenerations:        snap.Regenerations,
		FavoriteGenre:        "none",
		MostUsedWord:         "none yet",
		GenresPlayed:         snap.DistinctGenres,
		AchievementsUnlocked: len(unlocked),
		TotalAchievements:    len(Achievements()),
	}
	best := 0
	for genre, count := range snap.GenreCounts {
		if count > best || (count == best && genre < sum.FavoriteGenre) {
			best = count
			sum.FavoriteGenre = genre
		}
	}
	best = 0
	for word, count := range snap.WordCounts {
		if count > best || (count == best && word < sum.MostUsedWord) {
			best = count
			sum.MostUsedWord = word
		}
	}
	return sum, nil
}
