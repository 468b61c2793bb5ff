package config

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/komsit37/fin/pkg/fin/types"
)

//go:embed metrics.yaml
var raw []byte

// Config holds the static lookup tables: the ordered equity metric
// definitions and the sector to peer-ticker table. Loaded once at process
// start and passed by reference; never mutated afterwards.
type Config struct {
	Metrics []types.MetricDefinition
	Sectors map[string][]string
}

// Peers returns the peer tickers for a sector, or false when the sector has
// no benchmarking table.
func (c Config) Peers(sector string) ([]string, bool) {
	p, ok := c.Sectors[sector]
	return p, ok
}

var (
	once sync.Once
	cfg  Config
)

// Load parses the embedded tables on first call. The embedded data ships
// with the binary, so a parse failure is a build defect and panics.
func Load() Config {
	once.Do(func() {
		var err error
		cfg, err = parse(raw)
		if err != nil {
			panic(fmt.Sprintf("config: embedded metrics.yaml: %v", err))
		}
	})
	return cfg
}

func parse(data []byte) (Config, error) {
	var doc struct {
		Metrics []struct {
			Key           string `yaml:"key"`
			Label         string `yaml:"label"`
			LowerIsBetter bool   `yaml:"lower_is_better"`
			Bands         string `yaml:"bands"`
		} `yaml:"metrics"`
		Sectors map[string][]string `yaml:"sectors"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, err
	}
	if len(doc.Metrics) == 0 {
		return Config{}, fmt.Errorf("no metric definitions")
	}
	c := Config{Sectors: doc.Sectors}
	for _, m := range doc.Metrics {
		if m.Key == "" || m.Label == "" {
			return Config{}, fmt.Errorf("metric definition missing key or label")
		}
		c.Metrics = append(c.Metrics, types.MetricDefinition{
			Key:           types.MetricKey(m.Key),
			Label:         m.Label,
			LowerIsBetter: m.LowerIsBetter,
			Bands:         m.Bands,
		})
	}
	return c, nil
}
