package cmd

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"asset-browser/pkg/cart"
	"asset-browser/pkg/player"
	"asset-browser/pkg/services"
	"asset-browser/pkg/tui"
)

// Command options
var playerBinary string

// newBrowseCmd creates a new command for the interactive asset browser
func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the asset collection interactively",
		Long: `Browse the asset collection in an interactive terminal interface with a folder
tree, asset grid, music player, and a zip cart for downloading selected assets.`,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := LoadConfig()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}
			services.InitService(cfg)

			manifest, err := services.GetManifest()
			if err != nil {
				log.Fatalf("Failed to load manifest: %v", err)
			}
			assets, err := services.GetAssets()
			if err != nil {
				log.Fatalf("Failed to load assets: %v", err)
			}
			playlist, err := services.GetPlaylist()
			if err != nil {
				log.Fatalf("Failed to build playlist: %v", err)
			}

			var sink player.Sink = player.NoopSink{}
			if execSink, err := player.NewExecSink(playerBinary, cfg.AssetRoot); err != nil {
				log.Printf("Audio playback disabled: %v", err)
			} else {
				sink = execSink
			}

			store := cart.NewFileStore(cart.DefaultStorePath(cfg.AppPrefix))
			model := tui.New(cfg, manifest, assets, player.New(playlist, sink), cart.New(store))

			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				log.Fatalf("Browser error: %v", err)
			}
		},
	}

	cmd.Flags().StringVar(&playerBinary, "player", "mpv", "Audio player binary used for playback")

	return cmd
}
