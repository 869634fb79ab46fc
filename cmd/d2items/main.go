// Item data inspection tool: loads a definition data directory and answers
// lookups against it.
//
// Usage:
//
//	d2items info <code>                 # item type details
//	d2items affixes <code> <level>      # eligible magic affixes
//	d2items runewords <code> <sockets>  # eligible runewords
//	d2items uniques                     # regenerate and dump all uniques
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/d2core/internal/config"
	"github.com/udisondev/d2core/internal/magic"
	"github.com/udisondev/d2core/internal/prng"
	"github.com/udisondev/d2core/internal/tables"
	"github.com/udisondev/d2core/internal/txt"
)

const ConfigPath = "config/d2items.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	cfgPath := ConfigPath
	if p := os.Getenv("D2CORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadTool(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	})))

	if len(args) == 0 {
		printUsage()
		return fmt.Errorf("no command given")
	}

	src, err := txt.Open(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("opening data dir: %w", err)
	}

	x, err := tables.New(cfg.Language)
	if err != nil {
		return fmt.Errorf("building index: %w", err)
	}
	if err := x.Load(src); err != nil {
		return fmt.Errorf("loading data: %w", err)
	}

	switch args[0] {
	case "info":
		if len(args) != 2 {
			return fmt.Errorf("usage: d2items info <code>")
		}
		return cmdInfo(x, cfg, args[1])
	case "affixes":
		if len(args) != 3 {
			return fmt.Errorf("usage: d2items affixes <code> <level>")
		}
		level, err := strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("bad level %q: %w", args[2], err)
		}
		return cmdAffixes(x, cfg, args[1], int32(level))
	case "runewords":
		if len(args) != 3 {
			return fmt.Errorf("usage: d2items runewords <code> <sockets>")
		}
		sockets, err := strconv.ParseInt(args[2], 10, 32)
		if err != nil {
			return fmt.Errorf("bad socket count %q: %w", args[2], err)
		}
		return cmdRunewords(x, cfg, args[1], int32(sockets))
	case "uniques":
		return cmdUniques(ctx, x, cfg)
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func logLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: d2items <info|affixes|runewords|uniques> [args]")
}

func cmdInfo(x *tables.Index, cfg config.Tool, code string) error {
	it, ok := x.ItemType(code)
	if !ok {
		return fmt.Errorf("unknown item code %q", code)
	}

	name := x.Strings().Resolve(it.Name, cfg.Language).Text
	fmt.Printf("%s (%s)\n", name, it.Code)
	fmt.Printf("  categories: %s\n", strings.Join(it.Categories, " > "))
	if it.Damage.OneHandMax > 0 {
		fmt.Printf("  damage: %d-%d\n", it.Damage.OneHandMin, it.Damage.OneHandMax)
	}
	if it.DurabilityMax > 0 {
		fmt.Printf("  durability: %d\n", it.DurabilityMax)
	}
	if it.ReqStrength > 0 {
		fmt.Printf("  required strength: %d\n", it.ReqStrength)
	}
	if it.MaxSockets > 0 {
		fmt.Printf("  sockets: %d\n", it.MaxSockets)
	}
	if it.Beltable {
		fmt.Printf("  beltable\n")
	}
	return nil
}

func cmdAffixes(x *tables.Index, cfg config.Tool, code string, level int32) error {
	if _, ok := x.ItemType(code); !ok {
		return fmt.Errorf("unknown item code %q", code)
	}

	prefixes, suffixes := magic.Candidates(x, code, level, tables.Version(cfg.GameVersion))
	fmt.Printf("prefixes (%d):\n", len(prefixes))
	for _, a := range prefixes {
		fmt.Printf("  %s (lvl %d)\n", x.Strings().Resolve(a.NameKey, cfg.Language).Text, a.MinLevel)
	}
	fmt.Printf("suffixes (%d):\n", len(suffixes))
	for _, a := range suffixes {
		fmt.Printf("  %s (lvl %d)\n", x.Strings().Resolve(a.NameKey, cfg.Language).Text, a.MinLevel)
	}
	return nil
}

func cmdRunewords(x *tables.Index, cfg config.Tool, code string, sockets int32) error {
	words := magic.EligibleRunewords(x, magic.RunewordQuery{
		ItemCode:          code,
		Quality:           prng.QualityNormal,
		FormatVersion:     cfg.FormatVersion,
		Sockets:           sockets,
		MaxSockets:        sockets,
		GameVersion:       tables.Version(cfg.GameVersion),
		IncludeServerOnly: cfg.IncludeServerRunewords,
	})
	for _, rw := range words {
		var letters []string
		for _, r := range rw.Runes {
			if g, ok := x.Gem(r); ok {
				letters = append(letters, g.Letter)
			} else {
				letters = append(letters, r)
			}
		}
		fmt.Printf("%s [%s]\n", x.Strings().Resolve(rw.NameKey, cfg.Language).Text, strings.Join(letters, " "))
	}
	return nil
}

// cmdUniques regenerates every unique item's attribute list. Generation is
// pure lookup work, so it fans out across the worker pool.
func cmdUniques(ctx context.Context, x *tables.Index, cfg config.Tool) error {
	uniques := x.Uniques()
	lines := make([]string, len(uniques))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, u := range uniques {
		i, u := i, u
		g.Go(func() error {
			attrs := magic.Apply(x, u.Mods, uint32(u.ID), u.Level,
				prng.QualityUnique, tables.Version(cfg.GameVersion), cfg.MaxRollOnly)

			var b strings.Builder
			fmt.Fprintf(&b, "%s (%s, lvl %d)\n",
				x.Strings().Resolve(u.NameKey, cfg.Language).Text, u.BaseCode, u.Level)
			for _, attr := range attrs {
				stat, ok := x.Stat(attr.StatID)
				if !ok {
					continue
				}
				fmt.Fprintf(&b, "  %s %v\n", describeStat(x, cfg, stat), attr.Values)
			}
			lines[i] = b.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Print(line)
	}
	return nil
}

func describeStat(x *tables.Index, cfg config.Tool, stat tables.Stat) string {
	tpl := x.RenderStat(stat)
	text := tpl.Positive
	if text == "" {
		return stat.Name
	}
	// Template text carries string-table keys; resolve them for display.
	for _, key := range []string{stat.DescPositive, stat.DescNegative, stat.DescGroup} {
		if key == "" {
			continue
		}
		text = strings.ReplaceAll(text, key, x.Strings().Resolve(key, cfg.Language).Text)
	}
	return text
}
