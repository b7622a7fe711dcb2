package main

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/ItalyPaleAle/motivation-bot/bot"
	"github.com/ItalyPaleAle/motivation-bot/db"
	"github.com/ItalyPaleAle/motivation-bot/migrations"
)

func main() {
	// Load config
	loadConfig()

	// Connect to DB and migrate to the latest version
	dbc := db.ConnectDB()
	defer dbc.Close()
	migrations.Migrate()

	// Create the bot
	b := &bot.MotivationBot{}
	err := b.Init()
	if err != nil {
		panic(err)
	}

	// Start the bot - this is a blocking call
	err = b.Start()
	if err != nil {
		panic(err)
	}
}

func loadConfig() {
	viper.SetConfigName("bot-config")
	viper.AddConfigPath("$HOME/.motivation-bot")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./.motivation-bot")

	// Defaults
	viper.SetDefault("DBPath", "./data/bot.db")
	viper.SetDefault("GroqBaseURL", "https://api.groq.com/openai/v1")
	viper.SetDefault("GroqModel", "llama-3.1-8b-instant")
	viper.SetDefault("DailyHour", 9)
	viper.SetDefault("DailyMinute", 0)
	viper.SetDefault("TimeZone", "Asia/Kolkata")
	// Interval between refreshes of the remote quotes feed, in seconds
	viper.SetDefault("QuotesFeedUpdateInterval", 21600)

	// All options can be set with environmental variables too, such as "BOT_TELEGRAMAUTHTOKEN"
	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		// The config file is optional as long as every required option comes from the environment
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			panic(fmt.Sprintf("Fatal error config file: %s\n", err))
		}
	}
}
