package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/diamondburned/arikawa/v3/utils/httputil"

	"github.com/hhhapz/msgtree/content"
)

type botState struct {
	cfg    configuration
	appID  discord.AppID
	parser *content.Cached
	state  *state.State
}

func (b *botState) OnCommand(e *gateway.InteractionCreateEvent) {
	if e.GuildID != 0 {
		e.User = &e.Member.User
	}

	// ignore blacklisted users
	mu.Lock()
	_, ignored := b.cfg.Blacklist[discord.Snowflake(e.User.ID)]
	mu.Unlock()
	if ignored {
		log.Printf("Ignoring interaction from %s", e.User.Tag())
		return
	}

	switch data := e.Data.(type) {
	case *discord.CommandInteraction:
		switch data.Name {
		case "parse":
			b.handleParse(e, data)
		case "info":
			b.handleInfo(e, data)
		case "config":
			b.handleConfig(e, data)
		}

	case discord.ComponentInteraction:
		mu.Lock()
		d, ok := interactionMap[string(data.ID())]
		mu.Unlock()
		if ok {
			b.handleParseComponent(e, data, d)
			return
		}
	}
}

func loadCommands(s *state.State, me discord.UserID) error {
	appID := discord.AppID(me)
	registered, err := s.Commands(appID)
	if err != nil {
		return err
	}

	registeredMap := map[string]bool{}
	if !update {
		for _, c := range registered {
			registeredMap[c.Name] = true
			log.Println("Registered command:", c.Name)
		}
	}

	for _, c := range commands {
		if registeredMap[c.Name] {
			continue
		}
		if _, err := s.CreateCommand(appID, c); err != nil {
			var httperr *httputil.HTTPError
			if errors.As(err, &httperr) {
				log.Println(string(httperr.Body))
			}
			return fmt.Errorf("could not register: %s, %w", c.Name, err)
		}
		log.Println("Created command:", c.Name)
	}

	return nil
}

var commands = []api.CreateCommandData{
	{
		Name:        "parse",
		Description: "Parse rendered message markup into a content tree",
		Options: []discord.CommandOption{
			&discord.StringOption{
				OptionName:  "markup",
				Description: "Rendered message HTML",
				Required:    true,
			},
		},
	},
	{
		Name:        "info",
		Description: "Generic Bot Info",
	},
	{
		Name:                "config",
		Description:         "Configure MsgTree",
		NoDefaultPermission: true,
		Options: []discord.CommandOption{
			&discord.SubcommandGroupOption{
				OptionName:  "user",
				Description: "Manage user access to MsgTree",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "ignore",
						Description: "Ignore commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to ignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "unignore",
						Description: "Stop ignoring commands and actions from a user",
						Options: []discord.CommandOptionValue{
							&discord.UserOption{
								OptionName:  "user",
								Description: "User to unignore",
								Required:    true,
							},
						},
					},
					{
						OptionName:  "ignorelist",
						Description: "List all ignored users",
					},
				},
			},
			&discord.SubcommandGroupOption{
				OptionName:  "cache",
				Description: "Manage the parse cache",
				Subcommands: []*discord.SubcommandOption{
					{
						OptionName:  "flush",
						Description: "Drop every memoized tree",
					},
				},
			},
		},
	},
}
