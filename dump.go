package main

import (
	"os"

	"github.com/k0kubun/pp"
	"github.com/pkg/errors"

	"github.com/hhhapz/msgtree/content"
)

// dump parses a markup file and pretty prints the tree, for poking at
// parser output without a gateway connection.
func dump(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "could not read markup")
	}

	tree, err := content.Parse(string(raw))
	if err != nil {
		return err
	}

	pp.Println(tree)
	return nil
}
