package bot

import (
	tb "gopkg.in/tucnak/telebot.v2"
)

// Handles /help commands
func (b *MotivationBot) handleHelp(m *tb.Message) {
	// Send the help message
	_, err := b.respondToCommand(m, `
Available commands:
/subscribe - Receive a daily motivational message every morning
/unsubscribe - Stop the daily messages
/quote - Get a random motivational quote now
/help - Show this message

You can also just chat with me if you're stressed or need motivation.
`)
	if err != nil {
		// Log errors only
		b.log.Printf("Error sending message to chat %d: %s\n", m.Chat.ID, err.Error())
	}
}
