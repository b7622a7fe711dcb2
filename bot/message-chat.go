package bot

import (
	"strings"

	tb "gopkg.in/tucnak/telebot.v2"
)

// Handles free-text messages, which are forwarded to the AI responder
func (b *MotivationBot) handleChat(m *tb.Message) {
	// Trim whitespaces
	text := strings.TrimSpace(m.Text)
	if text == "" {
		return
	}

	// Commands that no handler captured end up here too
	if strings.HasPrefix(text, "/") {
		_, err := b.respondToCommand(m, "Sorry, I didn't quite get that 😔 Use /help for the list of commands.")
		if err != nil {
			// Log errors only
			b.log.Printf("Error sending message to chat %d: %s\n", m.Chat.ID, err.Error())
		}
		return
	}

	// The completion request can take a few seconds
	_ = b.bot.Notify(m.Chat, tb.Typing)

	// Reply never fails: on errors it returns a fallback message
	reply := b.ai.Reply(b.ctx, m.Chat.ID, text)
	_, err := b.respondToCommand(m, reply)
	if err != nil {
		// Log errors only
		b.log.Printf("Error sending message to chat %d: %s\n", m.Chat.ID, err.Error())
	}
}
