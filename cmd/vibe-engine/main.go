// Command vibe-engine rates a season's player population with the VIBE
// metric from a local stats dump.
//
// Usage:
//
//	vibe-engine rate --input players.json --season 2024-25 --top 25
//	vibe-engine rate --input dump.json --min-games 20 --json
//	vibe-engine formula
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/courtmetrics/vibe-engine/internal/config"
	"github.com/courtmetrics/vibe-engine/internal/loader"
	"github.com/courtmetrics/vibe-engine/internal/service"
	"github.com/courtmetrics/vibe-engine/internal/store"
	"github.com/courtmetrics/vibe-engine/internal/vibe"
	"github.com/courtmetrics/vibe-engine/pkg/logger"
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	logger.WithComponent("vibe-engine").WithFields(logrus.Fields{
		"environment": cfg.Env,
		"min_minutes": cfg.MinMinutes,
	}).Debug("Starting vibe-engine")

	root := &cobra.Command{
		Use:   "vibe-engine",
		Short: "VIBE player-rating engine",
		Long:  "Computes the Valued Impact Basketball Estimate for a season's player population.",
	}

	root.AddCommand(rateCmd(cfg, log))
	root.AddCommand(formulaCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rateCmd(cfg *config.Config, log *logrus.Logger) *cobra.Command {
	var (
		input      string
		season     string
		top        int
		minGames   int
		minMinutes float64
		workers    int
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "rate",
		Short: "Rate a season's players from a local stats file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			population, err := loader.LoadFile(input)
			if err != nil {
				return err
			}
			logger.WithSeason(season).WithField("players", len(population)).Info("Season population loaded")

			engine := vibe.NewEngine(minMinutes, workers, log)
			svc := service.New(engine, store.NewResultStore(cfg.CacheTTL), log)

			results, err := svc.RateSeason(ctx, season, population)
			if err != nil {
				return err
			}

			board := vibe.Leaderboard(results, minGames)
			if top > 0 && top < len(board) {
				board = board[:top]
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(board)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tPLAYER\tTEAM\tPOS\tGP\tMIN\tVIBE\tOVIBE\tDVIBE\tIMPACT\tTIER")
			for i, r := range board {
				name := r.Name
				if name == "" {
					name = fmt.Sprintf("#%d", r.PlayerID)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%.0f\t%.1f\t%+.2f\t%+.2f\t%+.2f\t%s\n",
					i+1, name, r.Team, r.Position, r.GamesPlayed, r.Minutes,
					r.VIBE, r.OVIBE, r.DVIBE, r.Impact, vibe.Tier(r.VIBE))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "path to the season stats JSON file")
	cmd.Flags().StringVar(&season, "season", "2024-25", "season label for the result cache")
	cmd.Flags().IntVar(&top, "top", 0, "show only the top N players (0 = all)")
	cmd.Flags().IntVar(&minGames, "min-games", cfg.MinGames, "minimum games played to appear on the leaderboard")
	cmd.Flags().Float64Var(&minMinutes, "min-minutes", cfg.MinMinutes, "minimum minutes to qualify for reference distributions")
	cmd.Flags().IntVar(&workers, "workers", cfg.Workers, "scoring worker count (0 = GOMAXPROCS)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the leaderboard as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func formulaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formula",
		Short: "Explain the VIBE formula",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), `VIBE - Valued Impact Basketball Estimate

VIBE  = 100 + 15 * (VIBE_shrunk - LeagueMean) / LeagueStd
Raw   = 0.65*Skill + 0.35*Impact
Skill = 0.6*OVIBE + 0.4*DVIBE

OVIBE  = 1.8*z_TS + 1.2*z_PTS100 + 1.3*z_AST100 + 0.8*z_ORB100 - 1.4*z_TOV100
DVIBE  = 1.3*z_STL100 + 1.1*z_BLK100 + 0.5*z_DRB100 - 1.0*z_PF100
         (defensive z-scores are relative to the player's position group)
Impact = z_PM100

Shrinkage: VIBE_shrunk = Raw * MIN/(MIN+600)

Interpretation:
  140+    MVP-level
  125-140 All-NBA
  115-125 Strong starter
  ~100    League average
  <90     Below-average impact
`)
		},
	}
}
