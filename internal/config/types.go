package config

import "github.com/electrical-elites/wishlink/internal/payload"

// Config is the top-level wishlink configuration, corresponding to
// .wishlink.yml. The group fields are the process-wide personalization
// defaults a payload falls back to when a link carries nothing.
type Config struct {
	Port            int    `yaml:"port" koanf:"port"`
	DataDir         string `yaml:"data_dir" koanf:"data_dir"`
	BaseURL         string `yaml:"base_url" koanf:"base_url"`
	PageName        string `yaml:"page_name" koanf:"page_name"`
	AllowAllOrigins bool   `yaml:"allow_all_origins" koanf:"allow_all_origins"`

	GroupName  string `yaml:"group_name" koanf:"group_name"`
	Greeting   string `yaml:"greeting" koanf:"greeting"`
	GroupPhoto string `yaml:"group_photo" koanf:"group_photo"`
	AudioURL   string `yaml:"audio_url" koanf:"audio_url"`
}

// Defaults returns the process-wide default payload derived from the
// configuration. It never carries a recipient or sender.
func (c *Config) Defaults() payload.Payload {
	return payload.Payload{
		GroupName:  c.GroupName,
		Greeting:   c.Greeting,
		GroupPhoto: c.GroupPhoto,
		AudioURL:   c.AudioURL,
	}
}
