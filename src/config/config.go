package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Error reports a missing, malformed, or incomplete parameters file.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("parameters file %s: %v", e.Path, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// Config holds one run's parameters, loaded once from a JSON file and
// immutable afterwards.
type Config struct {
	ClusterIP        string `mapstructure:"cluster_ip"`
	PCIP             string `mapstructure:"pc_ip"`
	Port             int    `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	PCUsername       string `mapstructure:"pc_username"`
	PCPassword       string `mapstructure:"pc_password"`
	ProtectionDomain string `mapstructure:"pd"`
	Category         string `mapstructure:"category"`
	Insecure         bool   `mapstructure:"insecure"`
}

// Load reads the JSON parameters file at path. The Prism Central address
// and category keys are only required when forMove is set; listing a
// protection domain does not need them. Prism Central credentials default
// to the cluster pair when not given.
func Load(path string, forMove bool) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	v.SetDefault("port", 9440)

	if err := v.ReadInConfig(); err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if cfg.PCUsername == "" {
		cfg.PCUsername = cfg.Username
	}
	if cfg.PCPassword == "" {
		cfg.PCPassword = cfg.Password
	}
	if err := cfg.validate(forMove); err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	return cfg, nil
}

func (c *Config) validate(forMove bool) error {
	required := []struct{ key, val string }{
		{"cluster_ip", c.ClusterIP},
		{"username", c.Username},
		{"password", c.Password},
		{"pd", c.ProtectionDomain},
	}
	if forMove {
		required = append(required,
			struct{ key, val string }{"pc_ip", c.PCIP},
			struct{ key, val string }{"category", c.Category},
		)
	}
	for _, r := range required {
		if r.val == "" {
			return fmt.Errorf("required key %q is missing or empty", r.key)
		}
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d is out of range", c.Port)
	}
	return nil
}
