package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MyelinBots/tagbot-go/config"
	"github.com/MyelinBots/tagbot-go/internal/db"
	"github.com/MyelinBots/tagbot-go/internal/db/repositories/profile"
	"github.com/MyelinBots/tagbot-go/internal/healthcheck"
	"github.com/MyelinBots/tagbot-go/internal/services/commands"
	"github.com/bwmarrin/discordgo"
)

func StartBot() error {
	cfg := config.LoadConfigOrPanic()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fmt.Printf("Starting %s %s\n", cfg.AppConfig.APPName, cfg.AppConfig.Version)
	healthcheck.StartHealthcheck(ctx, cfg.AppConfig)

	database, err := db.NewDatabase(cfg.DBConfig)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.AutoMigrate(&profile.User{}, &profile.GamerTag{}, &profile.ContactInfo{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}

	session, err := discordgo.New("Bot " + cfg.DiscordConfig.Token)
	if err != nil {
		return fmt.Errorf("creating discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	profiles := profile.NewProfileRepository(database)
	controller := commands.NewCommandController(session, profiles, cfg.DiscordConfig.CommandPrefix)

	controller.AddCommand("register", controller.RegisterHandler())
	controller.AddCommand("myinfo", controller.MyInfoHandler())
	controller.AddCommand("showt17", controller.ShowTagHandler(commands.PlatformT17))

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		fmt.Printf("%s is online!\n", r.User.Username)
	})

	session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot {
			return
		}
		if s.State.User != nil && m.Author.ID == s.State.User.ID {
			return
		}

		if err := controller.HandleCommand(ctx, m); err != nil {
			fmt.Printf("Error handling command: %s\n", err.Error())
		}
	})

	if err := session.Open(); err != nil {
		return fmt.Errorf("opening discord session: %w", err)
	}
	defer session.Close()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down")
	return nil
}
