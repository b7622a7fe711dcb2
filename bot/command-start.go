package bot

import (
	"fmt"

	tb "gopkg.in/tucnak/telebot.v2"
)

// Handles /start commands
func (b *MotivationBot) handleStart(m *tb.Message) {
	name := ""
	if m.Sender != nil && m.Sender.FirstName != "" {
		name = " " + m.Sender.FirstName
	}

	// Send the welcome message
	_, err := b.respondToCommand(m, fmt.Sprintf("Hi%s! 👋 I'm your motivational bot.", name))
	if err != nil {
		// Log errors only
		b.log.Printf("Error sending message to chat %d: %s\n", m.Chat.ID, err.Error())
	}

	// Send the help message too
	b.handleHelp(m)
}
