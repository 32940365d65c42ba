package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/halwyn/runescore/internal/config"
	"github.com/halwyn/runescore/internal/data"
	"github.com/halwyn/runescore/internal/hiscores"
	"github.com/halwyn/runescore/internal/model"
	"github.com/halwyn/runescore/internal/stats"
)

const ConfigPath = "config/runescore.yaml"

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

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	configPath := flag.String("config", ConfigPath, "config file path")
	mode := flag.String("mode", string(hiscores.ModeNormal), "leaderboard mode (normal, ironman, hardcore, ultimate, deadman, seasonal, tournament, fresh_start)")
	format := flag.String("format", string(hiscores.FormatJSON), "wire format (json or csv)")
	target := flag.Int("target", 0, "report XP missing to this level for each combat skill")
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("no player names given (usage: runescore [flags] player...)")
	}
	players := flag.Args()

	cfgPath := *configPath
	if p := os.Getenv("RUNESCORE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	data.SetXPTablePath(cfg.XPTablePath)
	client := hiscores.NewClient(cfg.HTTP)

	if hiscores.Format(*format) == hiscores.FormatCSV {
		return dumpRaw(ctx, client, players, hiscores.Mode(*mode))
	}

	records := make([]*model.PlayerRecord, len(players))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range players {
		i, name := i, name
		g.Go(func() error {
			rec, err := client.Lookup(gctx, name, hiscores.Mode(*mode))
			if err != nil {
				return fmt.Errorf("looking up %q: %w", name, err)
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	table := data.XPTable()
	if table.MaxLevel() == 0 {
		slog.Warn("experience table unavailable, level conversions degraded")
	}

	for i, name := range players {
		printSummary(name, records[i], table, *target)
	}
	return nil
}

// dumpRaw prints the legacy CSV payload for each player verbatim.
func dumpRaw(ctx context.Context, client *hiscores.Client, players []string, mode hiscores.Mode) error {
	for _, name := range players {
		raw, err := client.LookupRaw(ctx, name, mode)
		if err != nil {
			return fmt.Errorf("looking up %q: %w", name, err)
		}
		fmt.Printf("=== %s ===\n%s\n", name, raw)
	}
	return nil
}

func printSummary(name string, rec *model.PlayerRecord, table data.ExperienceTable, target int) {
	fmt.Printf("=== %s ===\n", name)

	if total, ok := rec.TotalLevel(); ok {
		fmt.Printf("Total level:   %d (maxed: %v)\n", total, stats.PlayerMaxedTotal(rec))
	}
	if xp, ok := rec.OverallXP(); ok {
		fmt.Printf("Overall XP:    %d\n", xp)
	}
	if rank, ok := rec.OverallRank(); ok {
		fmt.Printf("Overall rank:  %d\n", rank)
	}

	if combat, err := stats.PlayerCombatLevel(rec); err != nil {
		slog.Warn("combat level unavailable", "player", name, "err", err)
	} else {
		fmt.Printf("Combat level:  %.2f (maxed: %v)\n", combat, stats.PlayerMaxedCombat(rec))
	}

	fmt.Printf("XP by category:\n")
	fmt.Printf("  combat:     %d\n", stats.CombatXP(rec))
	fmt.Printf("  non-combat: %d\n", stats.NonCombatXP(rec))
	fmt.Printf("  gathering:  %d\n", stats.GatheringXP(rec))
	fmt.Printf("  production: %d\n", stats.ProductionXP(rec))
	fmt.Printf("  utility:    %d\n", stats.UtilityXP(rec))

	if target > 1 {
		fmt.Printf("XP to level %d:\n", target)
		for _, skill := range data.CombatSkills {
			xp, ok := rec.SkillXP(skill)
			if !ok || xp < 0 {
				continue
			}
			missing, ok := table.XPToTargetLevel(xp, target)
			if !ok {
				continue
			}
			fmt.Printf("  %-10s %d\n", skill+":", missing)
		}
	}
}
