package bot

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	tb "gopkg.in/tucnak/telebot.v2"

	"github.com/ItalyPaleAle/motivation-bot/ai"
	"github.com/ItalyPaleAle/motivation-bot/quotes"
	"github.com/ItalyPaleAle/motivation-bot/subscribers"
)

// MotivationBot is the class that manages the bot
type MotivationBot struct {
	log    *log.Logger
	bot    *tb.Bot
	subs   *subscribers.Subscribers
	ai     *ai.Responder
	quotes *quotes.Quotes
	ctx    context.Context
	cancel context.CancelFunc

	// Delivers a message to a chat; tests replace this with a fake
	send func(chatID int64, message string) error
}

// Init the object
func (b *MotivationBot) Init() (err error) {
	// Init the logger
	b.log = log.New(os.Stdout, "bot: ", log.Ldate|log.Ltime|log.LUTC)

	// Get the auth key
	// "token" is the default value in the config file
	authKey := viper.GetString("TelegramAuthToken")
	if authKey == "" || authKey == "token" {
		return errors.New("Telegram auth key not set. Please make sure that the 'TelegramAuthToken' option is present in the config file, or use the 'BOT_TELEGRAMAUTHTOKEN' environmental variable.")
	}

	// Poller
	var poller tb.Poller = &tb.LongPoller{Timeout: 10 * time.Second}

	// Check if we're restricting the bot to certain users only
	allowedUsers := b.getAllowedUsers()
	if len(allowedUsers) > 0 {
		// Create a middleware
		poller = tb.NewMiddlewarePoller(poller, b.allowedUsersMiddleware(allowedUsers))
	}

	// Create the bot object
	b.bot, err = tb.NewBot(tb.Settings{
		Token:   authKey,
		Poller:  poller,
		Verbose: viper.GetBool("TelegramAPIDebug"),
	})
	if err != nil {
		return err
	}

	// Deliver messages with the Telegram bot
	b.send = func(chatID int64, message string) error {
		_, err := b.bot.Send(recipientFromChatID(chatID), message, &tb.SendOptions{
			ParseMode: tb.ModeHTML,
		})
		return err
	}

	// Init the subscriber store
	b.subs = &subscribers.Subscribers{}
	err = b.subs.Init()
	if err != nil {
		return err
	}

	// Init the AI responder
	b.ai = &ai.Responder{}
	err = b.ai.Init()
	if err != nil {
		return err
	}

	// Handle messages
	b.handleMessages()

	return nil
}

// Start the bot and the background workers
func (b *MotivationBot) Start() error {
	// Context, that can be used to stop the bot
	b.ctx, b.cancel = context.WithCancel(context.Background())

	// Init the quotes object
	b.quotes = &quotes.Quotes{}
	err := b.quotes.Init(b.ctx)
	if err != nil {
		return err
	}

	// Start the background worker
	go b.backgroundWorker()

	// Start the bot
	b.log.Println("Bot starting")
	b.bot.Start()

	return nil
}

// Stop the bot and the background processes
func (b *MotivationBot) Stop() {
	b.cancel()
	b.bot.Stop()
}

// Registers the functions that handle all messages
func (b *MotivationBot) handleMessages() {
	b.bot.Handle("/start", b.handleStart)
	b.bot.Handle("/help", b.handleHelp)
	b.bot.Handle("/subscribe", b.handleSubscribe)
	b.bot.Handle("/unsubscribe", b.handleUnsubscribe)
	b.bot.Handle("/quote", b.handleQuote)

	// Free-text messages that weren't captured by other handlers go to the AI responder
	b.bot.Handle(tb.OnText, b.handleChat)
}

// Sends a response to a command
// For commands sent in private chats, this just sends a regular message
// In groups, this replies to a specific message
func (b *MotivationBot) respondToCommand(m *tb.Message, content interface{}, options ...interface{}) (*tb.Message, error) {
	if !m.Private() {
		options = append(options, &tb.SendOptions{
			ReplyTo: m,
		})
	}
	return b.bot.Send(m.Chat, content, options...)
}

// Returns the list of allowed users (if any)
// Returns a map so lookups are faster
func (b *MotivationBot) getAllowedUsers() (allowedUsers map[int64]bool) {
	// Check if we can get an int slice
	uids := viper.GetIntSlice("AllowedUsers")
	if len(uids) == 0 {
		// Check if we can get a string
		str := viper.GetString("AllowedUsers")
		if str != "" {
			// Split on commas
			for _, s := range strings.Split(str, ",") {
				// Ignore invalid ones
				num, err := strconv.Atoi(s)
				if err != nil || num < 1 {
					continue
				}
				// Add to the map
				if allowedUsers == nil {
					allowedUsers = make(map[int64]bool)
				}
				allowedUsers[int64(num)] = true
			}
		}
	} else {
		// Convert to a map
		allowedUsers = make(map[int64]bool, len(uids))
		for i := 0; i < len(uids); i++ {
			allowedUsers[int64(uids[i])] = true
		}
	}
	return
}

// Returns the poller middleware that only allows messages from users in the allowlist
func (b *MotivationBot) allowedUsersMiddleware(list map[int64]bool) func(u *tb.Update) bool {
	return func(u *tb.Update) bool {
		if u.Message == nil {
			return true
		}

		// Restrict to certain users only
		if u.Message.Sender == nil || u.Message.Sender.ID == 0 || !list[u.Message.Sender.ID] {
			if u.Message.Sender == nil {
				b.log.Println("Ignoring message from empty sender")
			} else {
				b.log.Println("Ignoring message from disallowed sender:", u.Message.Sender.ID)
			}
			return false
		}

		return true
	}
}

// Implements the tb.Recipient interface
type msgRecipient struct {
	R string
}

// Recipient returns the recipient of the message
func (m msgRecipient) Recipient() string {
	return m.R
}

// Returns a msgRecipient object from a chatId
func recipientFromChatID(chatID int64) msgRecipient {
	return msgRecipient{strconv.FormatInt(chatID, 10)}
}
