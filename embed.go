package main

import (
	"fmt"

	"github.com/diamondburned/arikawa/v3/discord"

	"github.com/hhhapz/msgtree/content"
)

const (
	outlineLimit = 2800
	textLimit    = 1000

	accentColor = 0x007D9C
)

func outlineEmbed(tree *content.Tree) discord.Embed {
	sketch, more := clamp(outline(tree), outlineLimit)
	if more {
		sketch += "\n... more nodes omitted"
	}
	if sketch == "" {
		sketch = "(no blocks)"
	}

	return discord.Embed{
		Title:       "Message tree",
		Description: fmt.Sprintf("```\n%s\n```", sketch),
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: blockCount(tree),
		},
	}
}

func textEmbed(tree *content.Tree) discord.Embed {
	text, more := clamp(tree.Text(), textLimit)
	if more {
		text += "\n*More text omitted*"
	}
	if text == "" {
		text = "*No visible text*"
	}

	return discord.Embed{
		Title:       "Message text",
		Description: text,
		Color:       accentColor,
		Footer: &discord.EmbedFooter{
			Text: blockCount(tree),
		},
	}
}

func blockCount(tree *content.Tree) string {
	if len(tree.Blocks) == 1 {
		return "1 block"
	}
	return fmt.Sprintf("%d blocks", len(tree.Blocks))
}

func failEmbed(title, description string) discord.Embed {
	return discord.Embed{
		Title:       title,
		Description: description,
		Color:       0xEE0000,
	}
}
