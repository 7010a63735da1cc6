package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to wishlink! Let's set up your group's wish page.")
	fmt.Println()

	cfg := DefaultConfig()

	groupPrompt := promptui.Prompt{
		Label:   "Group name",
		Default: cfg.GroupName,
	}
	groupName, err := groupPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("group name: %w", err)
	}
	cfg.GroupName = groupName

	greetingPrompt := promptui.Prompt{
		Label:   "Greeting text",
		Default: cfg.Greeting,
	}
	greeting, err := greetingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("greeting: %w", err)
	}
	cfg.Greeting = greeting

	photoPrompt := promptui.Prompt{
		Label:   "Group photo URL",
		Default: cfg.GroupPhoto,
	}
	photo, err := photoPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("photo url: %w", err)
	}
	cfg.GroupPhoto = photo

	audioPrompt := promptui.Prompt{
		Label:   "Audio clip URL",
		Default: cfg.AudioURL,
	}
	audio, err := audioPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("audio url: %w", err)
	}
	cfg.AudioURL = audio

	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	basePrompt := promptui.Prompt{
		Label:   "Public base URL (blank to derive from requests)",
		Default: cfg.BaseURL,
	}
	baseURL, err := basePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("base url: %w", err)
	}
	cfg.BaseURL = baseURL

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", path)

	return cfg, nil
}
