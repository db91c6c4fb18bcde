package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// PlatformT17 is the platform literal behind "!showt17".
const PlatformT17 = "T17"

// ShowTagHandler handles per-platform tag lookups such as "!showt17
// [@member]". Without a mention the invoker is the target; anyone may look
// up anyone's tag for the given platform.
func (c *CommandControllerImpl) ShowTagHandler(platform string) HandlerFunc {
	return func(ctx context.Context, msg *discordgo.MessageCreate, args ...string) error {
		target := msg.Author
		if len(msg.Mentions) > 0 {
			target = msg.Mentions[0]
		}

		targetID, err := parseSnowflake(target.ID)
		if err != nil {
			return err
		}

		tag, err := c.profiles.GetTag(ctx, targetID, platform)
		if err != nil {
			return fmt.Errorf("fetching %s tag: %w", platform, err)
		}

		name := displayName(target)
		if tag == nil {
			return c.reply(msg.ChannelID, fmt.Sprintf("❌ No %s tag found for %s", platform, name))
		}
		return c.reply(msg.ChannelID, fmt.Sprintf("🎮 %s's %s tag: **%s**", name, platform, tag.Tag))
	}
}
