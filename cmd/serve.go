package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/electrical-elites/wishlink/internal/config"
	"github.com/electrical-elites/wishlink/internal/db"
	"github.com/electrical-elites/wishlink/internal/defaults"
	"github.com/electrical-elites/wishlink/internal/guide"
	"github.com/electrical-elites/wishlink/internal/link"
	"github.com/electrical-elites/wishlink/internal/playback"
	"github.com/electrical-elites/wishlink/internal/resolve"
	"github.com/electrical-elites/wishlink/internal/server"
	"github.com/electrical-elites/wishlink/internal/web"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wish page server",
	Long:  `Starts the wishlink server, hosting the authoring page, the wish page, and the link and resolution API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Port = servePort
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}

		dbPath := filepath.Join(cfg.DataDir, "wishlink.db")
		database, err := db.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		srv := server.New(server.Config{
			Port:     cfg.Port,
			AllowAll: cfg.AllowAllOrigins,
		}, database)

		registerAllRoutes(srv, cfg, database)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "wishlink v%s starting on port %d\n", Version, cfg.Port)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)
		fmt.Fprintf(os.Stderr, "  Page: /%s\n", cfg.PageName)

		return srv.Start()
	},
}

// registerAllRoutes wires up all feature routes.
func registerAllRoutes(srv *server.Server, cfg *config.Config, database *db.DB) {
	r := srv.Router()

	// Local authoring defaults
	store := defaults.NewStore(database)
	defaults.RegisterRoutes(r, store)

	// Audio playback channel
	playback.RegisterRoutes(r)

	// Authoring guide
	guide.RegisterRoutes(r)

	// Pages and link API
	resolver := resolve.New(cfg.Defaults(), cfg.PageName, store)
	builder := link.NewBuilder(cfg.PageName)
	pages := web.New(cfg, resolver, builder, store)
	pages.RegisterRoutes(r)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
