package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/dustin/go-humanize"
)

func (b *botState) handleConfig(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	var embed discord.Embed

block:
	switch grp := d.Options[0]; grp.Name {
	case "user":
		switch cmd := grp.Options[0]; cmd.Name {
		case "ignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			if ok := b.canIgnore(e.GuildID, user); !ok {
				embed = failEmbed("Error", fmt.Sprintf("You cannot ignore <@!%s>.", user))
				break block
			}

			mu.Lock()
			_, ignored := b.cfg.Blacklist[user]
			if !ignored {
				b.cfg.Blacklist[user] = struct{}{}
			}
			mu.Unlock()

			if ignored {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is already being ignored.", user))
				break block
			}

			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now going to be ignored from all commands on MsgTree.", user),
				Color:       accentColor,
			}

		case "unignore":
			user, _ := cmd.Options[0].SnowflakeValue()

			mu.Lock()
			_, ignored := b.cfg.Blacklist[user]
			if ignored {
				delete(b.cfg.Blacklist, user)
			}
			mu.Unlock()

			if !ignored {
				embed = failEmbed("Error", fmt.Sprintf("<@!%s> is not being ignored.", user))
				break block
			}

			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("<@!%s> is now unignored.", user),
				Color:       accentColor,
			}

		case "ignorelist":
			mu.Lock()
			mentions := make([]string, 0, len(b.cfg.Blacklist))
			for id := range b.cfg.Blacklist {
				mentions = append(mentions, fmt.Sprintf("<@!%s>", id))
			}
			mu.Unlock()
			sort.Strings(mentions)

			desc := strings.Join(mentions, "\n")
			if desc == "" {
				desc = "Nobody is currently ignored."
			}
			embed = discord.Embed{
				Title:       "Ignored Users",
				Description: desc,
				Color:       accentColor,
			}
		}

	case "cache":
		switch cmd := grp.Options[0]; cmd.Name {
		case "flush":
			count := b.parser.Count()
			b.parser.Flush()
			embed = discord.Embed{
				Title:       "Success",
				Description: fmt.Sprintf("Dropped %s cached trees.", humanize.Comma(int64(count))),
				Color:       accentColor,
			}
		}
	}

	if !strings.HasPrefix(embed.Title, "Error") {
		err := saveConfig(b.cfg)
		if err != nil {
			embed = failEmbed("Error", fmt.Sprintf("Could not save config: `%v`", err))
		}
	}

	b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Flags:  api.EphemeralResponse,
			Embeds: &[]discord.Embed{embed},
		},
	})
}

func (b *botState) canIgnore(guild discord.GuildID, user discord.Snowflake) bool {
	m, err := b.state.Member(guild, discord.UserID(user))
	if err != nil {
		return false
	}
	for _, role := range m.RoleIDs {
		if _, ok := b.cfg.Permissions.Config[guild][discord.Snowflake(role)]; ok {
			return false
		}
	}
	return true
}
