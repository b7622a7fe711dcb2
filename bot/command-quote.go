package bot

import (
	"strconv"

	tb "gopkg.in/tucnak/telebot.v2"
)

// Handles /quote commands
func (b *MotivationBot) handleQuote(m *tb.Message) {
	// Optional argument: how many quotes to send at once
	count := 1
	args := GetArgs(m.Payload)
	if len(args) > 1 {
		b.respondToCommand(m, "Invalid arguments: need \"/quote [count]\"")
		return
	}
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 5 {
			b.respondToCommand(m, "Invalid arguments: count must be a number between 1 and 5")
			return
		}
		count = n
	}

	for i := 0; i < count; i++ {
		_, err := b.respondToCommand(m, "🌟 "+b.quotes.Random())
		if err != nil {
			// Log errors only
			b.log.Printf("Error sending message to chat %d: %s\n", m.Chat.ID, err.Error())
			return
		}
	}
}
