package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"logbookone/internal/version"
	"logbookone/pkg/catalog"
	"logbookone/pkg/config"
	"logbookone/pkg/gui/palette"
	"logbookone/pkg/theme"
)

func main() {
	var (
		showVersion    bool
		appearanceFlag string
		plain          bool
	)

	var rootCmd = &cobra.Command{
		Use:   "lbtheme",
		Short: "Browse the LogbookOne design-token palette",
		Long: `lbtheme shows the LogbookOne color catalog in the terminal.

On a TTY it opens an interactive browser; press 'a' to flip between the
light and dark variant of every token and 'q' to quit. When output is
redirected (or with --plain) it prints the catalog as text instead.

The chosen appearance is remembered across runs in ~/.logbookone/state.json.

Examples:
  lbtheme                     # interactive browser
  lbtheme --appearance dark   # start in dark appearance
  lbtheme --plain             # plain listing, no UI`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if showVersion {
				fmt.Println(version.Short())
				return nil
			}

			appearance, err := resolveAppearance(appearanceFlag)
			if err != nil {
				return err
			}

			if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
				return runListing(appearance)
			}
			return runBrowser(appearance)
		},
	}

	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
	rootCmd.Flags().StringVar(&appearanceFlag, "appearance", "", "Appearance to show: auto, light or dark")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Print a plain listing instead of the browser")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveAppearance prefers the flag, then the persisted preference.
func resolveAppearance(flag string) (theme.Appearance, error) {
	if flag != "" {
		return theme.ParseAppearance(flag)
	}

	saved, err := config.GetAppearance()
	if err != nil {
		// An unreadable state file should not block the tool.
		return theme.Auto, nil
	}
	appearance, err := theme.ParseAppearance(saved)
	if err != nil {
		return theme.Auto, nil
	}
	return appearance, nil
}

func runBrowser(appearance theme.Appearance) error {
	program := tea.NewProgram(palette.New(appearance), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func runListing(appearance theme.Appearance) error {
	c, err := catalog.Default()
	if err != nil {
		return err
	}

	fmt.Println(c.Bundle)
	fmt.Print(indent.String(renderListing(c, appearance.Resolve()), 2))
	return nil
}

func renderListing(c *catalog.Catalog, appearance theme.Appearance) string {
	names := c.Names()

	nameWidth := 0
	for _, name := range names {
		if w := runewidth.StringWidth(name); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	for _, name := range names {
		entry, err := c.Color(name)
		if err != nil {
			continue
		}
		hex := entry.Light
		if appearance == theme.Dark {
			hex = entry.Dark
		}
		fmt.Fprintf(&b, "%s  %s  (light %s, dark %s)\n",
			runewidth.FillRight(name, nameWidth), hex, entry.Light, entry.Dark)
	}
	return b.String()
}
