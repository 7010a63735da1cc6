package config

// DefaultConfig returns a Config with sensible defaults. The group values
// are the long-standing Electrical Elites wish-page defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:     8080,
		DataDir:  ".wishlink",
		PageName: "wish",

		GroupName:  "Electrical Elites",
		Greeting:   "Merry X‑mas and a very Happy New Year!",
		GroupPhoto: "https://vero-upload.zone.id/files/1766608386819_tzmuom13j.png",
		AudioURL:   "https://vero-upload.zone.id/files/1766607770700_9zr4ricgr1t.mp3",
	}
}
