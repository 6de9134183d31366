package main

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/diamondburned/arikawa/v3/api"
	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
)

var (
	parseErr = "Could not parse that markup: `%v`.\n\nThe input must be a rendered message fragment, not message source."
	notOwner = "Only the message sender can do this."
)

type interactionData struct {
	id      string
	created time.Time
	token   string
	userID  discord.UserID
	markup  string
}

var (
	interactionMap = map[string]*interactionData{}

	// mu guards interactionMap and the config blacklist.
	mu sync.Mutex
)

func (b *botState) gcInteractionData() {
	mapTicker := time.NewTicker(time.Minute * 5)
	cacheTicker := time.NewTicker(time.Hour * 24)
	for {
		select {

		// gc interaction tokens
		case <-mapTicker.C:
			for _, data := range expireInteractionData(time.Now()) {
				if data.token == "" {
					continue
				}

				b.state.EditInteractionResponse(b.appID, data.token, api.EditInteractionResponseData{
					Components: discord.ComponentsPtr(),
				})
			}

		case <-cacheTicker.C:
			b.parser.Flush()
		}
	}
}

// expireInteractionData drops every tracked interaction older than five
// minutes and returns the dropped entries.
func expireInteractionData(now time.Time) []*interactionData {
	mu.Lock()
	defer mu.Unlock()

	var expired []*interactionData
	for _, data := range interactionMap {
		if !now.After(data.created.Add(time.Minute * 5)) {
			continue
		}

		delete(interactionMap, data.id)
		expired = append(expired, data)
	}
	return expired
}

func (b *botState) handleParse(e *gateway.InteractionCreateEvent, d *discord.CommandInteraction) {
	// only arg and required, always present
	markup := d.Options[0].String()

	log.Printf("%s used parse(%d bytes)", e.User.Tag(), len(markup))

	tree, err := b.parser.Parse(markup)
	if err != nil {
		embed := failEmbed("Error", fmt.Sprintf(parseErr, err))
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		})
		return
	}

	mu.Lock()
	interactionMap[e.ID.String()] = &interactionData{
		id:      e.ID.String(),
		created: time.Now(),
		token:   e.Token,
		userID:  e.User.ID,
		markup:  markup,
	}
	mu.Unlock()

	if err := b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
		Type: api.MessageInteractionWithSource,
		Data: &api.InteractionResponseData{
			Embeds:     &[]discord.Embed{outlineEmbed(tree)},
			Components: discord.ComponentsPtr(selectComponent(e.ID.String(), "outline")),
		},
	}); err != nil {
		log.Printf("could not send interaction callback, %v", err)
	}
}

func (b *botState) handleParseComponent(e *gateway.InteractionCreateEvent, data discord.ComponentInteraction, d *interactionData) {
	action := "hide"
	if sel, ok := data.(*discord.SelectInteraction); ok && len(sel.Values) != 0 {
		action = sel.Values[0]
	}

	log.Printf("%s used parse component(%q)", e.User.Tag(), action)

	// if e.Member is nil, all operations should be allowed
	hasRole := e.Member == nil
	if !hasRole {
		for _, role := range e.Member.RoleIDs {
			if _, ok := b.cfg.Permissions.Parse[discord.Snowflake(role)]; ok {
				hasRole = true
				break
			}
		}
	}

	hasPerm := func() bool {
		if hasRole {
			return true
		}

		perms, err := b.state.Permissions(e.ChannelID, e.User.ID)
		if err != nil {
			return false
		}
		return perms.Has(discord.PermissionAdministrator)
	}

	tree, err := b.parser.Parse(d.markup)
	if err != nil {
		b.state.RespondInteraction(e.ID, e.Token, api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{failEmbed("Error", fmt.Sprintf(parseErr, err))},
			},
		})
		return
	}

	var embed discord.Embed
	var components *discord.ContainerComponents

	switch action {
	case "outline":
		embed = outlineEmbed(tree)
		components = discord.ComponentsPtr(selectComponent(d.id, "outline"))

	case "text":
		embed = textEmbed(tree)
		components = discord.ComponentsPtr(selectComponent(d.id, "text"))

	case "hide":
		embed = outlineEmbed(tree)
		embed.Description = ""
		components = discord.ComponentsPtr()

		if hasPerm() {
			mu.Lock()
			delete(interactionMap, d.id)
			mu.Unlock()
		}
	}

	if e.GuildID != 0 {
		// Check admin last.
		if e.User.ID != d.userID && !hasPerm() {
			embed = failEmbed("Error", notOwner)
		}
	}

	var resp api.InteractionResponse
	if strings.HasPrefix(embed.Title, "Error") {
		resp = api.InteractionResponse{
			Type: api.MessageInteractionWithSource,
			Data: &api.InteractionResponseData{
				Flags:  api.EphemeralResponse,
				Embeds: &[]discord.Embed{embed},
			},
		}
	} else {
		resp = api.InteractionResponse{
			Type: api.UpdateMessage,
			Data: &api.InteractionResponseData{
				Embeds:     &[]discord.Embed{embed},
				Components: components,
			},
		}
	}
	b.state.RespondInteraction(e.ID, e.Token, resp)
}

func selectComponent(id, view string) *discord.SelectComponent {
	toggle := discord.SelectOption{
		Label:       "Text view",
		Value:       "text",
		Description: "Show the message's flattened text.",
		Emoji:       &discord.ComponentEmoji{Name: "📄"},
	}
	if view == "text" {
		toggle = discord.SelectOption{
			Label:       "Outline view",
			Value:       "outline",
			Description: "Show the parsed node outline.",
			Emoji:       &discord.ComponentEmoji{Name: "🌲"},
		}
	}

	return &discord.SelectComponent{
		CustomID:    discord.ComponentID(id),
		Placeholder: "Actions",
		Options: []discord.SelectOption{
			toggle,
			{
				Label:       "Hide",
				Value:       "hide",
				Description: "Hide the message.",
				Emoji:       &discord.ComponentEmoji{Name: "❌"},
			},
		},
	}
}
