package bot

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/ItalyPaleAle/motivation-bot/db"
	"github.com/ItalyPaleAle/motivation-bot/migrations"
	"github.com/ItalyPaleAle/motivation-bot/quotes"
	"github.com/ItalyPaleAle/motivation-bot/subscribers"
)

func TestNextDailyFire(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name   string
		now    time.Time
		hour   int
		minute int
		want   time.Time
	}{
		{
			name: "before the fire time",
			now:  time.Date(2023, 5, 10, 6, 30, 0, 0, loc),
			hour: 9, minute: 0,
			want: time.Date(2023, 5, 10, 9, 0, 0, 0, loc),
		},
		{
			name: "after the fire time",
			now:  time.Date(2023, 5, 10, 9, 0, 1, 0, loc),
			hour: 9, minute: 0,
			want: time.Date(2023, 5, 11, 9, 0, 0, 0, loc),
		},
		{
			name: "exactly at the fire time rolls to tomorrow",
			now:  time.Date(2023, 5, 10, 9, 0, 0, 0, loc),
			hour: 9, minute: 0,
			want: time.Date(2023, 5, 11, 9, 0, 0, 0, loc),
		},
		{
			name: "end of month",
			now:  time.Date(2023, 5, 31, 23, 59, 0, 0, loc),
			hour: 9, minute: 30,
			want: time.Date(2023, 6, 1, 9, 30, 0, 0, loc),
		},
		{
			name: "now in a different zone",
			now:  time.Date(2023, 5, 10, 9, 0, 0, 0, time.UTC), // 14:30 in Kolkata
			hour: 9, minute: 0,
			want: time.Date(2023, 5, 11, 9, 0, 0, 0, loc),
		},
	}

	for _, el := range cases {
		t.Run(el.name, func(t *testing.T) {
			got := nextDailyFire(el.now, el.hour, el.minute, loc)
			if !got.Equal(el.want) {
				t.Fatalf("Expected %s but got %s", el.want, got)
			}
		})
	}
}

func TestSendDailyMessages(t *testing.T) {
	// Use a temporary database
	viper.Set("DBPath", filepath.Join(t.TempDir(), "bot.db"))
	dbc := db.ConnectDB()
	defer dbc.Close()
	migrations.Migrate()

	subs := &subscribers.Subscribers{}
	err := subs.Init()
	if err != nil {
		t.Fatal(err)
	}
	for _, chatID := range []int64{10, 20, 30} {
		err := subs.Subscribe(chatID, "", "UTC")
		if err != nil {
			t.Fatal(err)
		}
	}

	// A chat that unsubscribed must not get the daily message
	err = subs.Subscribe(40, "", "UTC")
	if err != nil {
		t.Fatal(err)
	}
	err = subs.Unsubscribe(40)
	if err != nil {
		t.Fatal(err)
	}

	viper.Set("QuotesFeed", "")
	q := &quotes.Quotes{}
	err = q.Init(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	// Fake delivery: record every attempt, and fail for the chat in the middle of the batch
	attempts := make(map[int64]int)
	b := &MotivationBot{
		log:    log.New(io.Discard, "bot: ", 0),
		subs:   subs,
		quotes: q,
		send: func(chatID int64, message string) error {
			attempts[chatID]++
			if message == "" {
				t.Error("Expected a non-empty message")
			}
			if chatID == 20 {
				return errors.New("blocked by user")
			}
			return nil
		},
	}

	b.sendDailyMessages()

	// Every subscribed chat is attempted exactly once, even after a failure mid-batch
	if len(attempts) != 3 {
		t.Fatalf("Expected 3 chats to be attempted, got %d: %v", len(attempts), attempts)
	}
	for _, chatID := range []int64{10, 20, 30} {
		if attempts[chatID] != 1 {
			t.Fatalf("Expected exactly 1 attempt for chat %d, got %d", chatID, attempts[chatID])
		}
	}
	if attempts[40] != 0 {
		t.Fatal("Expected no attempt for the unsubscribed chat")
	}
}

func TestFormatDailyMessage(t *testing.T) {
	out := formatDailyMessage("Progress > perfection")
	if !strings.Contains(out, "Progress &gt; perfection") {
		t.Fatalf("Expected HTML entities to be escaped, got %s", out)
	}
	if !strings.Contains(out, "<b>") {
		t.Fatalf("Expected the quote to be bold, got %s", out)
	}
}
