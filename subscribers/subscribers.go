package subscribers

import (
	"database/sql"
	"errors"
	"log"
	"os"
	"time"

	"github.com/ItalyPaleAle/motivation-bot/db"
	"github.com/ItalyPaleAle/motivation-bot/models"
)

// Subscribers is an object that manages the list of subscribers
type Subscribers struct {
	log *log.Logger
}

// Init the object
func (s *Subscribers) Init() error {
	// Init the logger
	s.log = log.New(os.Stdout, "subscribers: ", log.Ldate|log.Ltime|log.LUTC)

	return nil
}

// Subscribe adds a chat to the subscriber list, or re-activates a chat that had unsubscribed
// The operation is idempotent: subscribing a chat that's already subscribed changes nothing
func (s *Subscribers) Subscribe(chatID int64, firstName string, tz string) error {
	if chatID == 0 {
		return errors.New("empty chat ID")
	}

	DB := db.GetDB()

	// Begin a transaction
	tx, err := DB.Beginx()
	if err != nil {
		s.log.Println("Error starting a transaction:", err)
		return err
	}
	defer tx.Rollback()

	// Check if the chat is in the table already
	sub := &models.Subscriber{}
	err = tx.Get(sub, "SELECT chat_id, subscribed FROM subscribers WHERE chat_id = ? LIMIT 1", chatID)
	if err != nil && err != sql.ErrNoRows {
		s.log.Println("Error querying the database:", err)
		return err
	}

	if err == sql.ErrNoRows {
		// New chat
		_, err = tx.Exec("INSERT INTO subscribers (chat_id, first_name, timezone, subscribed, subscribed_at) VALUES (?, ?, ?, 1, ?)", chatID, firstName, tz, time.Now())
		if err != nil {
			s.log.Println("Error querying the database:", err)
			return err
		}
	} else if sub.Subscribed {
		// Nothing to do
		return nil
	} else {
		// Chat had unsubscribed before: re-activate it
		_, err = tx.Exec("UPDATE subscribers SET subscribed = 1, first_name = ?, subscribed_at = ? WHERE chat_id = ?", firstName, time.Now(), chatID)
		if err != nil {
			s.log.Println("Error querying the database:", err)
			return err
		}
	}

	// Commit the transaction
	err = tx.Commit()
	if err != nil {
		s.log.Println("Error while committing the transaction:", err)
		return err
	}

	s.log.Printf("Subscribed chat %d", chatID)

	return nil
}

// Unsubscribe stops the daily messages for a chat
// The row is kept in the table with the subscribed flag off; unknown chats are a no-op
func (s *Subscribers) Unsubscribe(chatID int64) error {
	DB := db.GetDB()

	_, err := DB.Exec("UPDATE subscribers SET subscribed = 0 WHERE chat_id = ?", chatID)
	if err != nil {
		s.log.Println("Error querying the database:", err)
		return err
	}

	s.log.Printf("Unsubscribed chat %d", chatID)

	return nil
}

// IsSubscribed returns true if the chat currently receives the daily messages
func (s *Subscribers) IsSubscribed(chatID int64) (bool, error) {
	DB := db.GetDB()

	sub := &models.Subscriber{}
	err := DB.Get(sub, "SELECT chat_id, subscribed FROM subscribers WHERE chat_id = ? LIMIT 1", chatID)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		s.log.Println("Error querying the database:", err)
		return false, err
	}

	return sub.Subscribed, nil
}

// ListSubscribed returns the chat IDs of all chats currently subscribed
func (s *Subscribers) ListSubscribed() ([]int64, error) {
	DB := db.GetDB()

	rows := []int64{}
	err := DB.Select(&rows, "SELECT chat_id FROM subscribers WHERE subscribed = 1 ORDER BY chat_id ASC")
	if err != nil {
		if err == sql.ErrNoRows {
			// No rows
			return nil, nil
		}
		s.log.Println("Error querying the database:", err)
		return nil, err
	}

	return rows, nil
}
