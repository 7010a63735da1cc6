package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/electrical-elites/wishlink/internal/config"
	"github.com/electrical-elites/wishlink/internal/db"
	"github.com/electrical-elites/wishlink/internal/defaults"
	"github.com/electrical-elites/wishlink/internal/link"
	"github.com/electrical-elites/wishlink/internal/payload"
)

var (
	linkRecipient string
	linkSender    string
	linkGreeting  string
	linkJSON      bool
	linkNoCopy    bool
)

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Mint shareable wish links for a recipient",
	Long: `Builds the path, query, and fragment forms of a wish link for one
recipient, prompting for anything not given as a flag. The sender and
greeting you use are remembered as defaults for the next link.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cfg.BaseURL == "" {
			cfg.BaseURL = fmt.Sprintf("http://localhost:%d/", cfg.Port)
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
		database, err := db.Open(filepath.Join(cfg.DataDir, "wishlink.db"))
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()
		store := defaults.NewStore(database)

		ctx := context.Background()
		p := cfg.Defaults()
		if rec, err := store.Get(ctx); err == nil && rec != nil {
			p = payload.Overlay(p, rec.Payload())
		}
		p.Recipient = strings.TrimSpace(linkRecipient)
		if linkSender != "" {
			p.Sender = linkSender
		}
		if linkGreeting != "" {
			p.Greeting = linkGreeting
		}

		if p.Recipient == "" {
			prompt := promptui.Prompt{
				Label: "Recipient name",
				Validate: func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("recipient is required")
					}
					return nil
				},
			}
			recipient, err := prompt.Run()
			if err != nil {
				return fmt.Errorf("recipient: %w", err)
			}
			p.Recipient = strings.TrimSpace(recipient)
		}
		if p.Sender == "" {
			prompt := promptui.Prompt{Label: "Sender name (blank for group)"}
			sender, err := prompt.Run()
			if err != nil {
				return fmt.Errorf("sender: %w", err)
			}
			p.Sender = sender
		}

		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("parsing base url: %w", err)
		}

		builder := link.NewBuilder(cfg.PageName)
		links := builder.Build(base, p)

		if err := store.Save(ctx, defaults.Record{
			GroupName:  p.GroupName,
			Greeting:   p.Greeting,
			GroupPhoto: p.GroupPhoto,
			AudioURL:   p.AudioURL,
			Sender:     p.Sender,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save defaults: %v\n", err)
		}

		if linkJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(links)
		}

		fmt.Printf("Wish links for %s:\n\n", p.Recipient)
		if links.PathURL != "" {
			fmt.Printf("  Path:     %s\n", links.PathURL)
		}
		fmt.Printf("  Query:    %s\n", links.QueryURL)
		fmt.Printf("  Fragment: %s\n", links.FragmentURL)

		if !linkNoCopy {
			if err := clipboard.WriteAll(links.FragmentURL); err != nil {
				fmt.Printf("\nCopy this link:\n%s\n", links.FragmentURL)
			} else {
				fmt.Println("\nFragment link copied to clipboard.")
			}
		}
		return nil
	},
}

func init() {
	linkCmd.Flags().StringVar(&linkRecipient, "recipient", "", "Recipient name")
	linkCmd.Flags().StringVar(&linkSender, "sender", "", "Sender name (defaults to the last one used)")
	linkCmd.Flags().StringVar(&linkGreeting, "greeting", "", "Greeting text override")
	linkCmd.Flags().BoolVar(&linkJSON, "json", false, "Print links as JSON")
	linkCmd.Flags().BoolVar(&linkNoCopy, "no-copy", false, "Skip copying the link to the clipboard")
	rootCmd.AddCommand(linkCmd)
}
