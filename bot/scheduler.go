package bot

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/ItalyPaleAle/motivation-bot/utils"
)

// Returns the time of the next daily fire strictly after now
func nextDailyFire(now time.Time, hour int, minute int, loc *time.Location) time.Time {
	now = now.In(loc)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, loc)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// In background, wait for the daily send time and periodically refresh the remote quotes
// Also watch for the stop message
func (b *MotivationBot) backgroundWorker() {
	// Sleep for 2 seconds
	time.Sleep(2 * time.Second)

	// Queue a quotes refresh right away
	b.quotes.QueueRefresh()

	hour, minute, loc := b.dailySchedule()

	// Timer for the daily message
	timer := time.NewTimer(time.Until(nextDailyFire(time.Now(), hour, minute, loc)))

	// Ticker for the quotes feed refreshes
	ticker := time.NewTicker(viper.GetDuration("QuotesFeedUpdateInterval") * time.Second)
	for {
		select {
		// Time to send the daily message, then re-arm for tomorrow
		case <-timer.C:
			b.sendDailyMessages()
			timer.Reset(time.Until(nextDailyFire(time.Now(), hour, minute, loc)))

		// On the interval, queue a quotes refresh
		case <-ticker.C:
			b.quotes.QueueRefresh()

		// Context canceled
		case <-b.ctx.Done():
			timer.Stop()
			ticker.Stop()
			return
		}
	}
}

// Sends the daily message to every subscribed chat
// A failed send to one recipient is logged and doesn't stop the batch
func (b *MotivationBot) sendDailyMessages() {
	list, err := b.subs.ListSubscribed()
	if err != nil {
		// Error is already logged; we'll try again at the next fire
		return
	}

	// One quote for the whole batch
	message := formatDailyMessage(b.quotes.Random())

	b.log.Printf("Sending the daily message to %d subscribers\n", len(list))
	sent := 0
	for _, chatID := range list {
		err := b.send(chatID, message)
		if err != nil {
			b.log.Printf("Error sending the daily message to chat %d: %s\n", chatID, err.Error())
			continue
		}
		sent++
	}
	b.log.Printf("Daily message sent to %d of %d subscribers\n", sent, len(list))
}

// Formats the daily message around a quote
func formatDailyMessage(quote string) string {
	return fmt.Sprintf("Good morning! 🌞\n\n🌟 <b>%s</b>\n\nHave a great day! 💪", utils.EscapeHTMLEntities(quote))
}

// Reads the daily schedule from the config
// An invalid time zone falls back to UTC
func (b *MotivationBot) dailySchedule() (hour int, minute int, loc *time.Location) {
	hour = viper.GetInt("DailyHour")
	minute = viper.GetInt("DailyMinute")
	tz := viper.GetString("TimeZone")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		b.log.Printf("Invalid TimeZone '%s', using UTC: %s\n", tz, err.Error())
		loc = time.UTC
	}
	return
}

// Label for the daily send time, shown in the /subscribe confirmation
func (b *MotivationBot) dailyTimeLabel() string {
	hour, minute, loc := b.dailySchedule()
	return fmt.Sprintf("%02d:%02d (%s)", hour, minute, loc.String())
}
