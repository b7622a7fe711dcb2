package subscribers

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/ItalyPaleAle/motivation-bot/db"
	"github.com/ItalyPaleAle/motivation-bot/migrations"
)

func TestSubscribers(t *testing.T) {
	// Use a temporary database
	viper.Set("DBPath", filepath.Join(t.TempDir(), "bot.db"))
	dbc := db.ConnectDB()
	defer dbc.Close()
	migrations.Migrate()

	s := &Subscribers{}
	err := s.Init()
	if err != nil {
		t.Fatal(err)
	}

	countRows := func(t *testing.T) int {
		t.Helper()
		count := 0
		err := db.GetDB().Get(&count, "SELECT COUNT(*) FROM subscribers")
		if err != nil {
			t.Fatal(err)
		}
		return count
	}

	t.Run("subscribe", func(t *testing.T) {
		err := s.Subscribe(100, "Ada", "Asia/Kolkata")
		if err != nil {
			t.Fatal(err)
		}

		subscribed, err := s.IsSubscribed(100)
		if err != nil {
			t.Fatal(err)
		}
		if !subscribed {
			t.Fatal("Expected chat 100 to be subscribed")
		}
	})

	t.Run("subscribing twice leaves a single record", func(t *testing.T) {
		err := s.Subscribe(100, "Ada", "Asia/Kolkata")
		if err != nil {
			t.Fatalf("Expected subscribing twice to be a no-op, got %v", err)
		}
		if count := countRows(t); count != 1 {
			t.Fatalf("Expected 1 row, got %d", count)
		}

		subscribed, err := s.IsSubscribed(100)
		if err != nil {
			t.Fatal(err)
		}
		if !subscribed {
			t.Fatal("Expected chat 100 to still be subscribed")
		}
	})

	t.Run("empty chat ID", func(t *testing.T) {
		err := s.Subscribe(0, "", "")
		if err == nil {
			t.Fatal("Expected an error for an empty chat ID")
		}
	})

	t.Run("list subscribed", func(t *testing.T) {
		err := s.Subscribe(50, "Grace", "Asia/Kolkata")
		if err != nil {
			t.Fatal(err)
		}

		list, err := s.ListSubscribed()
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 2 || list[0] != 50 || list[1] != 100 {
			t.Fatalf("Expected [50 100], got %v", list)
		}
	})

	t.Run("unsubscribe keeps the row", func(t *testing.T) {
		err := s.Unsubscribe(100)
		if err != nil {
			t.Fatal(err)
		}

		subscribed, err := s.IsSubscribed(100)
		if err != nil {
			t.Fatal(err)
		}
		if subscribed {
			t.Fatal("Expected chat 100 to be unsubscribed")
		}

		// The row is not deleted
		if count := countRows(t); count != 2 {
			t.Fatalf("Expected 2 rows, got %d", count)
		}

		list, err := s.ListSubscribed()
		if err != nil {
			t.Fatal(err)
		}
		if len(list) != 1 || list[0] != 50 {
			t.Fatalf("Expected [50], got %v", list)
		}
	})

	t.Run("unsubscribing an unknown chat is a no-op", func(t *testing.T) {
		err := s.Unsubscribe(999)
		if err != nil {
			t.Fatal(err)
		}
	})

	t.Run("re-subscribe", func(t *testing.T) {
		err := s.Subscribe(100, "Ada", "Asia/Kolkata")
		if err != nil {
			t.Fatal(err)
		}

		subscribed, err := s.IsSubscribed(100)
		if err != nil {
			t.Fatal(err)
		}
		if !subscribed {
			t.Fatal("Expected chat 100 to be subscribed again")
		}
		if count := countRows(t); count != 2 {
			t.Fatalf("Expected 2 rows, got %d", count)
		}
	})
}
