package main

import (
	"encoding/json"
	"log"
	"os"
	"sort"

	"github.com/diamondburned/arikawa/v3/discord"
	"github.com/pkg/errors"
)

type configuration struct {
	Token       string             `json:"token"`
	Permissions commandPermissions `json:"permissions"`
	Blacklist   snowflakeLookup    `json:"blacklist"`
}

type commandPermissions struct {
	// Parse lists roles that may manage anyone's parse results.
	Parse snowflakeLookup `json:"parse"`
	// Config lists roles per guild that can never be ignored.
	Config map[discord.GuildID]snowflakeLookup `json:"config"`
}

// snowflakeLookup is a set of snowflakes, stored in JSON as a sorted
// array of strings.
type snowflakeLookup map[discord.Snowflake]struct{}

func (s snowflakeLookup) MarshalJSON() ([]byte, error) {
	ids := make([]discord.Snowflake, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	return json.Marshal(strs)
}

func (s *snowflakeLookup) UnmarshalJSON(data []byte) error {
	var strs []string
	if err := json.Unmarshal(data, &strs); err != nil {
		return err
	}
	if *s == nil {
		*s = make(snowflakeLookup, len(strs))
	}
	for _, str := range strs {
		id, err := discord.ParseSnowflake(str)
		if err != nil {
			return err
		}
		(*s)[id] = struct{}{}
	}
	return nil
}

func configFromBytes(fileBytes []byte) (configuration, error) {
	var config configuration
	if err := json.Unmarshal(fileBytes, &config); err != nil {
		return configuration{}, err
	}

	if config.Blacklist == nil {
		config.Blacklist = snowflakeLookup{}
	}
	if config.Permissions.Parse == nil {
		config.Permissions.Parse = snowflakeLookup{}
	}
	if config.Permissions.Config == nil {
		config.Permissions.Config = map[discord.GuildID]snowflakeLookup{}
	}
	return config, nil
}

func config() configuration {
	fileBytes, err := os.ReadFile("config.json")
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not open config"))
	}
	config, err := configFromBytes(fileBytes)
	if err != nil {
		log.Fatal(errors.Wrap(err, "could not parse config"))
	}
	return config
}

func saveConfig(cfg configuration) error {
	// encoding walks the blacklist map
	mu.Lock()
	data, err := json.MarshalIndent(cfg, "", "\t")
	mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	if err := os.WriteFile("config.json", data, 0644); err != nil {
		return errors.Wrap(err, "could not write config")
	}
	return nil
}
