package main

import (
	"testing"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/utils/json"
	"github.com/stretchr/testify/assert"
)

func TestConfigUserOption(t *testing.T) {
	// user options arrive as quoted snowflakes
	opt := discord.CommandInteractionOption{
		Type:  discord.UserOptionType,
		Name:  "user",
		Value: json.Raw(`"170910973891969024"`),
	}

	user, err := opt.SnowflakeValue()
	assert.NoError(t, err)
	assert.Equal(t, discord.Snowflake(170910973891969024), user)
}
