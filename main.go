package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/diamondburned/arikawa/v3/gateway"
	"github.com/diamondburned/arikawa/v3/state"
	"github.com/pkg/errors"

	"github.com/hhhapz/msgtree/content"
)

var update bool

func main() {
	updateVar := flag.Bool("update", false, "update all commands, regardless of if they are present or not")
	dumpVar := flag.String("dump", "", "parse a markup file, print its tree, and exit")
	flag.Parse()
	update = *updateVar

	if *dumpVar != "" {
		if err := dump(*dumpVar); err != nil {
			log.Fatalln(errors.Wrap(err, "could not dump tree"))
		}
		return
	}

	cfg := config()
	if cfg.Token == "" {
		log.Fatal("no token provided")
	}

	s := state.New("Bot " + cfg.Token)
	b := botState{
		cfg:    cfg,
		parser: content.WithCache(time.Hour * 24),
		state:  s,
	}

	s.AddHandler(b.OnCommand)
	s.AddIntents(gateway.IntentGuilds)

	if err := s.Open(context.Background()); err != nil {
		log.Fatalln("failed to open:", err)
	}
	defer s.Close()

	log.Println("Gateway connection established.")
	me, err := s.Me()
	if err != nil {
		log.Println("Could not get me:", err)
		return
	}
	b.appID = discord.AppID(me.ID)

	log.Println("Logged in as", me.Tag())

	if err := loadCommands(s, me.ID); err != nil {
		log.Println("Could not load commands:", err)
		return
	}

	go b.gcInteractionData()
	select {}
}
