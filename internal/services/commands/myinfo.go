package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// MyInfoHandler handles "!myinfo": the invoker's tags, one line per
// platform, plus the stored email when consent was granted.
func (c *CommandControllerImpl) MyInfoHandler() HandlerFunc {
	return func(ctx context.Context, msg *discordgo.MessageCreate, args ...string) error {
		invokerID, err := parseSnowflake(msg.Author.ID)
		if err != nil {
			return err
		}

		tags, err := c.profiles.ListTags(ctx, invokerID)
		if err != nil {
			return fmt.Errorf("listing gamer tags: %w", err)
		}
		contact, err := c.profiles.GetContact(ctx, invokerID)
		if err != nil {
			return fmt.Errorf("fetching contact info: %w", err)
		}

		var response strings.Builder
		response.WriteString("🎮 Gamer Tags:\n")
		for _, t := range tags {
			response.WriteString(fmt.Sprintf("- %s: %s\n", t.Platform, t.Tag))
		}
		if contact != nil && contact.Consent {
			response.WriteString(fmt.Sprintf("\n📧 Email: %s", contact.Email))
		}

		return c.reply(msg.ChannelID, response.String())
	}
}
