package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/AlejandroRodriguezIT/plataforma-penafiel/internal/domain/round"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// roundTableFile is the YAML layout of ROUND_OVERRIDES_FILE:
//
//	version: "2025-26"
//	rounds:
//	  J5: {start: "2025-09-08", show_previous: false}
//	  J8: {previous: J9}
//	order:
//	  - {first: J9, then: J8}
type roundTableFile struct {
	Version string                       `koanf:"version"`
	Rounds  map[string]roundOverrideFile `koanf:"rounds"`
	Order   []roundSwapFile              `koanf:"order"`
}

type roundOverrideFile struct {
	Start        string `koanf:"start"`
	Previous     string `koanf:"previous"`
	ShowPrevious *bool  `koanf:"show_previous"`
}

type roundSwapFile struct {
	First string `koanf:"first"`
	Then  string `koanf:"then"`
}

// LoadRoundTable returns the season override table and round order. An
// empty path yields the built-in 2024/25 table.
func LoadRoundTable(path string) (round.Overrides, round.Order, error) {
	if path == "" {
		return round.DefaultOverrides(), round.DefaultOrder(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return round.Overrides{}, round.Order{}, fmt.Errorf("load ROUND_OVERRIDES_FILE: %w", err)
	}

	var raw roundTableFile
	if err := k.UnmarshalWithConf("", &raw, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return round.Overrides{}, round.Order{}, fmt.Errorf("decode ROUND_OVERRIDES_FILE: %w", err)
	}

	return raw.build()
}

func (f roundTableFile) build() (round.Overrides, round.Order, error) {
	overrides := round.Overrides{
		Version: strings.TrimSpace(f.Version),
		Rounds:  make(map[round.ID]round.Override, len(f.Rounds)),
	}
	if overrides.Version == "" {
		return round.Overrides{}, round.Order{}, fmt.Errorf("round table: version must not be empty")
	}

	keys := make(map[round.ID]string, len(f.Rounds))
	for key, item := range f.Rounds {
		id, err := round.Parse(key)
		if err != nil {
			return round.Overrides{}, round.Order{}, fmt.Errorf("round table: %w", err)
		}
		if other, ok := keys[id]; ok {
			return round.Overrides{}, round.Order{}, fmt.Errorf("round table: keys %q and %q both name %s", other, key, id)
		}
		keys[id] = key

		override := round.Override{ShowPrevious: true}
		if item.ShowPrevious != nil {
			override.ShowPrevious = *item.ShowPrevious
		}
		if start := strings.TrimSpace(item.Start); start != "" {
			at, err := time.Parse(time.DateOnly, start)
			if err != nil {
				return round.Overrides{}, round.Order{}, fmt.Errorf("round table: start of %s: %w", id, err)
			}
			override.Start = &at
		}
		if previous := strings.TrimSpace(item.Previous); previous != "" {
			prev, err := round.Parse(previous)
			if err != nil {
				return round.Overrides{}, round.Order{}, fmt.Errorf("round table: previous of %s: %w", id, err)
			}
			if prev == id {
				return round.Overrides{}, round.Order{}, fmt.Errorf("round table: %s cannot precede itself", id)
			}
			override.Previous = &prev
		}

		overrides.Rounds[id] = override
	}

	order := round.Order{Swaps: make([]round.Swap, 0, len(f.Order))}
	for _, item := range f.Order {
		first, err := round.Parse(item.First)
		if err != nil {
			return round.Overrides{}, round.Order{}, fmt.Errorf("round table: order: %w", err)
		}
		then, err := round.Parse(item.Then)
		if err != nil {
			return round.Overrides{}, round.Order{}, fmt.Errorf("round table: order: %w", err)
		}
		order.Swaps = append(order.Swaps, round.Swap{First: first, Then: then})
	}

	return overrides, order, nil
}
