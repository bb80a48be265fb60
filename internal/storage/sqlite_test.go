package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTest(t)

	records := []Record{
		{GameID: "chase", Score: 1200, Maze: "classic", Level: 2, Player: "ada"},
		{GameID: "chase", Score: 300, Maze: "compact", Level: 1, Player: "bob"},
		{GameID: "chase", Score: 4500, Maze: "classic", Level: 3, Player: "ada"},
		{GameID: "other", Score: 9999, Maze: "classic"},
	}
	for _, r := range records {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", r, err)
		}
	}

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	want := []int{4500, 1200, 300}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, expected %d", i, s.Score, want[i])
		}
	}
	top := scores[0]
	if top.Maze != "classic" || top.Level != 3 || top.Player != "ada" || top.GameID != "chase" {
		t.Errorf("top entry fields not round-tripped: %+v", top)
	}
	if top.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	compact, err := store.TopScoresForMaze("chase", "compact", 10)
	if err != nil {
		t.Fatalf("TopScoresForMaze() failed: %v", err)
	}
	if len(compact) != 1 || compact[0].Score != 300 {
		t.Errorf("compact scores = %+v", compact)
	}

	mazes, err := store.Mazes("chase")
	if err != nil {
		t.Fatalf("Mazes() failed: %v", err)
	}
	if len(mazes) != 2 || mazes[0] != "classic" || mazes[1] != "compact" {
		t.Errorf("Mazes() = %v", mazes)
	}
}

func TestStoreSaveDefaults(t *testing.T) {
	store := openTest(t)

	if _, err := store.SaveScore(Record{Score: 10}); err == nil {
		t.Error("expected error without game id")
	}
	if _, err := store.SaveScore(Record{GameID: "chase", Score: 10}); err != nil {
		t.Fatal(err)
	}
	scores, _ := store.AllScores("chase")
	if len(scores) != 1 || scores[0].Level != 1 {
		t.Errorf("level should default to 1, got %+v", scores)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTest(t)

	for i := 0; i < 15; i++ {
		if _, err := store.SaveScore(Record{GameID: "chase", Score: i * 10}); err != nil {
			t.Fatal(err)
		}
	}

	scores, err := store.TopScores("chase", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("expected 5 scores, got %d", len(scores))
	}
	if scores[0].Score != 140 {
		t.Errorf("expected top score 140, got %d", scores[0].Score)
	}

	// Non-positive limit means 10.
	scores, _ = store.TopScores("chase", 0)
	if len(scores) != 10 {
		t.Errorf("expected default limit of 10, got %d", len(scores))
	}

	all, _ := store.AllScores("chase")
	if len(all) != 15 {
		t.Errorf("AllScores returned %d entries, expected 15", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTest(t)

	high, err := store.HighScore("chase")
	if err != nil || high != 0 {
		t.Fatalf("empty HighScore = %d, %v", high, err)
	}

	store.SaveScore(Record{GameID: "chase", Score: 100})
	store.SaveScore(Record{GameID: "chase", Score: 250})
	store.SaveScore(Record{GameID: "chase_practice", Score: 900})

	if high, _ := store.HighScore("chase"); high != 250 {
		t.Errorf("HighScore() = %d, expected 250", high)
	}

	if err := store.ClearScores("chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("chase", 10); len(scores) != 0 {
		t.Errorf("expected no scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("chase_practice", 10); len(scores) != 1 {
		t.Error("ClearScores should not touch other games")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTest(t)

	store.SaveScore(Record{GameID: "chase", Score: 100, Level: 1})
	store.SaveScore(Record{GameID: "chase", Score: 300, Level: 4})

	stats, err := store.GetGameStats("chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.AvgScore != 200 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("none")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty stats %+v", empty)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('chase', 700);`)
	db.Close()
	if err != nil {
		t.Fatal(err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Level != 1 || scores[0].Maze != "" {
		t.Errorf("old row not migrated: %+v", scores)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.arcade/scores.db")
	if err != nil {
		t.Fatalf("Open() with ~ path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".arcade", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}
