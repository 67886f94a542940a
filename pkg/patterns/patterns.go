// Package patterns holds named starting boards in the header + body text
// form read by life.FromStream.
package patterns

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"golife/pkg/life"
)

//go:embed data/*.txt
var builtin embed.FS

var registry = map[string]string{}

// Register adds a pattern under the provided name, replacing any previous one.
func Register(name, text string) {
	if name == "" || text == "" {
		return
	}
	registry[name] = text
}

// Names lists the registered patterns in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Load starts a new game from the named pattern.
func Load(name string) (*life.Game, error) {
	text, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
	game, err := life.FromStream(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("pattern %s: %w", name, err)
	}
	return game, nil
}

func init() {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := builtin.ReadFile(path.Join("data", e.Name()))
		if err != nil {
			panic(err)
		}
		Register(strings.TrimSuffix(e.Name(), ".txt"), string(data))
	}
}
