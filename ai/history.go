package ai

import (
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Number of exchanges (user message + reply) kept per chat
const maxHistory = 5

// Rolling per-chat conversation buffer
// Held in memory only, for the lifetime of the process
type history struct {
	lock  sync.Mutex
	max   int
	chats map[int64][]openai.ChatCompletionMessage
}

func newHistory(max int) *history {
	return &history{
		max:   max,
		chats: make(map[int64][]openai.ChatCompletionMessage),
	}
}

// Get returns a copy of the recent messages for a chat
func (h *history) Get(chatID int64) []openai.ChatCompletionMessage {
	h.lock.Lock()
	defer h.lock.Unlock()

	stored := h.chats[chatID]
	out := make([]openai.ChatCompletionMessage, len(stored))
	copy(out, stored)
	return out
}

// Append records an exchange for a chat, dropping the oldest entries beyond the cap
func (h *history) Append(chatID int64, userText string, reply string) {
	h.lock.Lock()
	defer h.lock.Unlock()

	buf := append(h.chats[chatID],
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: userText},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: reply},
	)

	// Keep only the last few messages for context
	if len(buf) > h.max*2 {
		buf = buf[len(buf)-h.max*2:]
	}
	h.chats[chatID] = buf
}
