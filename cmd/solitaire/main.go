// Package main provides the solitaire CLI for playing Eliminator, Brawl and Spider.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/signalnine/solitaire/bridge"
	"github.com/signalnine/solitaire/config"
	"github.com/signalnine/solitaire/engine"
	"github.com/signalnine/solitaire/game"
)

// Version information (set by build flags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// CLI flags
var (
	configPath   string
	variant      string
	seed         int64
	snapshotPath string
	verbose      bool
	showVersion  bool
)

func init() {
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.StringVar(&variant, "variant", "spider", "Game to play (eliminator, brawl, spider)")
	flag.Int64Var(&seed, "seed", 0, "Random seed (0 = use current time)")
	flag.StringVar(&snapshotPath, "snapshot", "", "Write a FlatBuffers view of the final table to this file")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose output")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Printf("solitaire %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	v, _ := game.ParseVariant(cfg.Variant)
	session, err := game.NewSession(v, cfg.GameOptions(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}

	printBanner(session)
	startTime := time.Now()
	if err := run(session, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "\nError reading moves: %v\n", err)
		os.Exit(1)
	}
	printSummary(session, time.Since(startTime))

	if snapshotPath != "" {
		if err := os.WriteFile(snapshotPath, bridge.Encode(session), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write snapshot: %v\n", err)
		}
	}
}

// loadConfig reads the config file, then lets explicitly set flags win
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "variant":
			cfg.Variant = variant
		case "seed":
			cfg.Seed = seed
		case "verbose":
			cfg.Verbose = verbose
		}
	})
	if configPath == "" {
		cfg.Variant = variant
	}
	return cfg, cfg.Validate()
}

// run reads moves from in until the session ends or input runs out
func run(s *game.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for !s.Done() {
		fmt.Fprintf(out, "\n%s> ", s.Table)
		if !scanner.Scan() {
			return scanner.Err()
		}

		move, err := parseMove(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}

		var ruleErr *engine.RuleError
		if err := s.Play(move); errors.As(err, &ruleErr) {
			fmt.Fprintf(out, "Illegal move: %v\n", ruleErr)
		} else if err != nil {
			return err
		}
	}
	return nil
}

func printBanner(s *game.Session) {
	fmt.Println()
	fmt.Println("╔════════════════════════════════════════════════════════════╗")
	fmt.Println("║                   Solitaire (Go)                           ║")
	fmt.Println("╚════════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Game:     %s\n", s.Variant)
	fmt.Printf("  Session:  %s\n", s.ID)
	fmt.Println("  Moves:    d = ask for cards, tN / fN = pile N, two targets = from/to, q = quit")
}

func printSummary(s *game.Session, total time.Duration) {
	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	if s.Finished() {
		fmt.Println("                         YOU WON")
	} else {
		fmt.Println("                        GAME OVER")
	}
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("  Moves:  %d\n", s.Moves())
	fmt.Printf("  Time:   %s\n", formatDuration(total))
	fmt.Println()
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		m := int(d.Minutes())
		s := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm%ds", m, s)
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh%dm", h, m)
}
