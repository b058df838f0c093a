// Command atrium runs the single-page site in the terminal.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"atrium"
	"atrium/internal/config"
	"atrium/internal/gallery"
	"atrium/internal/localstore"
	"atrium/internal/markdown"
	"atrium/internal/nav"
	"atrium/internal/site"
	"atrium/internal/ui"
	"atrium/internal/worldmap"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// printWidth is the wrap width for one-shot stdout rendering.
const printWidth = 80

// CLI is the command surface for atrium.
type CLI struct {
	Query      string           `arg:"" optional:"" help:"Deep link query, e.g. \"?id=gallery&collection=alps\"."`
	Print      bool             `help:"Render the requested view once to stdout and exit."`
	Theme      string           `help:"Color theme override (dark or light)."`
	Fade       time.Duration    `help:"Fade duration override." default:"-1ms"`
	Config     string           `help:"Extra config file, highest priority." type:"path"`
	ContentDir string           `help:"Local content directory shadowing the embedded site." type:"path"`
	Version    kong.VersionFlag `help:"Show version." short:"V"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("atrium"),
		kong.Description("A single-page personal site for the terminal."),
		kong.Vars{"version": fmt.Sprintf("atrium %s (%s) built %s", version, commit, date)},
	)
	ctx.FatalIfErrorf(run(&cli, os.Stdout))
}

// run wires the session: config, content, state, then either one-shot
// print or the interactive program.
func run(cli *CLI, stdout io.Writer) error {
	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	applyFlags(cfg, cli)
	if err := cfg.Validate(); err != nil {
		return err
	}

	fsys := contentFS(cfg)
	registry, err := site.Load(fsys)
	if err != nil {
		return err
	}
	collections, err := gallery.LoadCollections(fsys)
	if err != nil {
		return err
	}
	places, err := worldmap.LoadPlaces(fsys)
	if err != nil {
		return err
	}

	initial, err := nav.ParseQuery(cli.Query)
	if err != nil {
		return err
	}

	if cli.Print || !isatty.IsTerminal(os.Stdout.Fd()) {
		return printOnce(stdout, registry, collections, places, initial, cfg.UI.Theme)
	}

	store := localstore.NewFileStore(stateDir(cfg))
	// A persisted theme preference wins over config, but not over an
	// explicit flag.
	if cli.Theme == "" {
		if saved, found, err := store.Get("theme"); err == nil && found {
			cfg.UI.Theme = saved
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	m := ui.NewModel(registry, collections, places, store, initial, cfg.UI.Theme, cfg.UI.Fade)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// loadConfig loads layered config from user and project paths with env
// overrides; an explicit --config path layers on top.
func loadConfig(extra string) (*config.Config, error) {
	paths := []string{}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "atrium", "atrium.yaml"))
	}
	paths = append(paths, "atrium.yaml")
	if extra != "" {
		paths = append(paths, extra)
	}

	cfg, err := config.LoadLayered(paths...)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags layers explicit CLI flags over the loaded config.
func applyFlags(cfg *config.Config, cli *CLI) {
	if cli.Theme != "" {
		cfg.UI.Theme = cli.Theme
	}
	if cli.Fade >= 0 {
		cfg.UI.Fade = cli.Fade
	}
	if cli.ContentDir != "" {
		cfg.Content.Dir = cli.ContentDir
	}
}

// contentFS returns the session's content filesystem: embedded demo
// content, shadowed file by file when a local dir is configured.
func contentFS(cfg *config.Config) fs.FS {
	if cfg.Content.Dir != "" {
		return atrium.OverlayFS(cfg.Content.Dir, atrium.Content)
	}
	return atrium.Content
}

// stateDir resolves where the key-value store lives.
func stateDir(cfg *config.Config) string {
	if cfg.State.Dir != "" {
		return cfg.State.Dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "atrium", "state")
	}
	return ".atrium-state"
}

// printOnce renders the requested view to stdout without the TUI: posts
// and the map render fully, the gallery prints its collection list (or
// a deep-linked collection's captions), and Home prints the site index.
func printOnce(w io.Writer, registry *site.Registry, collections []gallery.Collection, places []worldmap.Place, loc nav.Location, theme string) error {
	if loc.IsHome() {
		fmt.Fprintln(w, registry.SiteTitle())
		for _, it := range registry.Items() {
			fmt.Fprintf(w, "  %-12s %s\n", it.ID, it.Blurb)
		}
		return nil
	}

	it, ok := registry.Get(loc.ID)
	if !ok {
		return fmt.Errorf("atrium: %w: %q", site.ErrNotFound, loc.ID)
	}

	switch it.Kind {
	case site.KindPost:
		src, err := registry.PostSource(loc.ID)
		if err != nil {
			return err
		}
		body, err := markdown.New(theme).Render(src, printWidth)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, body)
	case site.KindMap:
		fmt.Fprintln(w, worldmap.Render(places, printWidth))
	case site.KindGallery:
		ctrl := gallery.NewController(collections)
		ctrl.Enter(loc.Collection)
		fmt.Fprintln(w, ctrl.View(printWidth))
	}
	return nil
}
