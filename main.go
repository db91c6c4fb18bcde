package main

import (
	"log"

	"github.com/MyelinBots/tagbot-go/internal/bot"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "tagbot",
		Short:        "Discord bot for registering and looking up gamer tags",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bot.StartBot()
		},
	}

	if err := root.Execute(); err != nil {
		log.Fatalf("Error starting bot: %v", err)
	}
}
