package bot

import (
	"fmt"

	"github.com/spf13/viper"
	tb "gopkg.in/tucnak/telebot.v2"
)

// Handles /subscribe commands
func (b *MotivationBot) handleSubscribe(m *tb.Message) {
	firstName := ""
	if m.Sender != nil {
		firstName = m.Sender.FirstName
	}

	// Add the subscription
	// Subscribing twice is fine: the confirmation is sent again
	err := b.subs.Subscribe(m.Chat.ID, firstName, viper.GetString("TimeZone"))
	if err != nil {
		b.respondToCommand(m, "An internal error occurred")
		return
	}

	b.respondToCommand(m, fmt.Sprintf("You're subscribed ✅\nYou'll get a motivational message every day at %s.\nUse /unsubscribe to stop.", b.dailyTimeLabel()))
}

// Handles /unsubscribe commands
func (b *MotivationBot) handleUnsubscribe(m *tb.Message) {
	// This is a no-op for chats that never subscribed
	err := b.subs.Unsubscribe(m.Chat.ID)
	if err != nil {
		b.respondToCommand(m, "An internal error occurred")
		return
	}

	b.respondToCommand(m, "You've been unsubscribed. Use /subscribe to join again.")
}
