package replacer

import (
	"encoding/json"
	"fmt"
	"os"

	"cowtrie/common"

	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
)

// Config holds replacer configuration.
type Config struct {
	Policy       string `mapstructure:"policy"`       // lru_k or lru
	NumFrames    int    `mapstructure:"num_frames"`   // Number of frames in the buffer pool
	K            int    `mapstructure:"k"`            // History depth for lru_k
	Synchronized bool   `mapstructure:"synchronized"` // Wrap with an internal mutex
}

// Environment variables read by LoadConfigFromEnv.
const (
	envPolicy       = "COWTRIE_REPLACER_POLICY"
	envNumFrames    = "COWTRIE_REPLACER_NUM_FRAMES"
	envK            = "COWTRIE_REPLACER_K"
	envSynchronized = "COWTRIE_REPLACER_SYNCHRONIZED"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Policy:    common.ReplacerPolicyLRUK,
		NumFrames: 64,
		K:         2,
	}
}

// DecodeConfig decodes a generic map on top of the defaults. Input is weakly
// typed so string values from the environment or flags are accepted.
func DecodeConfig(input map[string]interface{}) (*Config, error) {
	config := DefaultConfig()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           config,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(input); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidParam, err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigFromFile loads configuration from a JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return DecodeConfig(raw)
}

// LoadConfigFromEnv loads configuration from environment variables
// Falls back to default values if environment variables are not set
func LoadConfigFromEnv() (*Config, error) {
	raw := make(map[string]interface{})
	for field, env := range map[string]string{
		"policy":       envPolicy,
		"num_frames":   envNumFrames,
		"k":            envK,
		"synchronized": envSynchronized,
	} {
		if val, ok := os.LookupEnv(env); ok {
			raw[field] = val
		}
	}
	return DecodeConfig(raw)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.NumFrames <= 0 {
		return fmt.Errorf("%w: num_frames must be greater than 0", common.ErrInvalidParam)
	}

	switch c.Policy {
	case common.ReplacerPolicyLRUK:
		if c.K <= 0 {
			return fmt.Errorf("%w: k must be greater than 0", common.ErrInvalidParam)
		}
	case common.ReplacerPolicyLRU:
	default:
		return fmt.Errorf("%w: unknown policy %q (must be %s or %s)", common.ErrInvalidParam,
			c.Policy, common.ReplacerPolicyLRUK, common.ReplacerPolicyLRU)
	}
	return nil
}

// New creates a replacer based on the configured policy.
func New(c *Config) (Replacer, error) {
	if err := c.Validate(); err != nil {
		glog.Errorf("invalid replacer config %+v: %v", *c, err)
		return nil, err
	}

	var r Replacer
	var err error
	switch c.Policy {
	case common.ReplacerPolicyLRU:
		r, err = NewLRUReplacer(c.NumFrames)
	default:
		r, err = NewLRUKReplacer(c.NumFrames, c.K)
	}
	if err != nil {
		return nil, err
	}
	glog.Infof("created %s replacer for %d frames (k: %d, synchronized: %v)",
		c.Policy, c.NumFrames, c.K, c.Synchronized)
	if c.Synchronized {
		return NewSyncReplacer(r), nil
	}
	return r, nil
}
