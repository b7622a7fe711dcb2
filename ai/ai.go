package ai

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/spf13/viper"
)

// Timeout for completion requests
const requestTimeout = 30 * time.Second

// Options for completion requests
const (
	maxTokens   = 120
	temperature = 0.7
)

// Instructions sent with every completion request
const systemPrompt = "You are a kind motivational assistant. " +
	"Reply in 2-3 sentences, always positive, encouraging, and supportive. " +
	"If user is stressed, give calming and simple tips."

// Reply used when no API key is configured
const unavailableReply = "Sorry, my AI chat service is currently unavailable. But remember: You've got this!"

// Reply used when the completion API fails
const errorReply = "I'm here for you 💙. Take a deep breath and remember you're doing your best."

// Responder generates replies to free-text messages using an OpenAI-compatible completion API
type Responder struct {
	log     *log.Logger
	client  *openai.Client
	model   string
	history *history
}

// Init the object
func (a *Responder) Init() error {
	// Init the logger
	a.log = log.New(os.Stdout, "ai: ", log.Ldate|log.Ltime|log.LUTC)

	// Init the per-chat conversation history
	a.history = newHistory(maxHistory)

	// Without an API key the bot still runs, but free-text messages get a canned reply
	apiKey := viper.GetString("GroqAPIKey")
	if apiKey == "" {
		a.log.Println("GroqAPIKey is not set: AI chat is disabled")
		return nil
	}

	cfg := openai.DefaultConfig(apiKey)
	if base := viper.GetString("GroqBaseURL"); base != "" {
		cfg.BaseURL = base
	}
	a.client = openai.NewClientWithConfig(cfg)
	a.model = viper.GetString("GroqModel")

	return nil
}

// Enabled returns true if the completion API is configured
func (a *Responder) Enabled() bool {
	return a != nil && a.client != nil
}

// Reply sends the message and the chat's recent history to the completion API and returns the reply
// Failures are logged and turned into a friendly fallback string, so there's always something to send back
func (a *Responder) Reply(ctx context.Context, chatID int64, text string) string {
	if !a.Enabled() {
		return unavailableReply
	}

	// Assemble the conversation: instructions, then the rolling history, then the new message
	past := a.history.Get(chatID)
	messages := make([]openai.ChatCompletionMessage, 0, len(past)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	messages = append(messages, past...)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: text,
	})

	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()
	resp, err := a.client.CreateChatCompletion(reqCtx, openai.ChatCompletionRequest{
		Model:       a.model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})

	reply := ""
	if err != nil {
		a.log.Println("Error from the completion API:", err)
	} else {
		for _, c := range resp.Choices {
			if c.Message.Content != "" {
				reply = strings.TrimSpace(c.Message.Content)
				break
			}
		}
	}
	if reply == "" {
		reply = errorReply
	}

	// Record the exchange, including fallback replies, so the conversation stays coherent
	a.history.Append(chatID, text, reply)

	return reply
}
