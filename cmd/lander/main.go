// Command lander plays Mars Lander level 2: fly over rough terrain to the
// flat pad and touch down gently.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"puzzle_bots/internal/config"
	"puzzle_bots/internal/lander"
	"puzzle_bots/internal/logging"
	"puzzle_bots/internal/turnio"
)

func main() {
	set, err := config.ParseSettings("lander", os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	log := logging.New(os.Stderr, set.LogLevel)

	cfg, err := config.Load(set.ConfigPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", set.ConfigPath).Msg("Failed to load tuning")
	}
	if set.DumpConfig {
		b, err := cfg.YAML()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to render tuning")
		}
		fmt.Print(string(b))
		return
	}

	if err := play(os.Stdin, os.Stdout, lander.NewRules(cfg.Lander), log); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

func play(in io.Reader, out io.Writer, rules lander.Rules, log zerolog.Logger) error {
	rd := turnio.NewReader(in)
	wr := turnio.NewWriter(out)

	terrain, err := rd.Terrain()
	if err != nil {
		return fmt.Errorf("read terrain: %w", err)
	}
	s, err := rd.LanderState()
	if err != nil {
		return fmt.Errorf("read first turn: %w", err)
	}
	pilot, err := lander.NewPilot(rules, terrain, s)
	if err != nil {
		return err
	}
	c := pilot.Course()
	log.Info().Stringer("pad", c.Pad).Stringer("dir", c.Dir).Int("points", len(terrain)).Msg("Course set")

	for turn := 0; ; turn++ {
		d := pilot.Step(s)
		log.Debug().
			Int("turn", turn).
			Int("x", s.X).Int("y", s.Y).
			Int("hs", s.HSpeed).Int("vs", s.VSpeed).
			Int("fuel", s.Fuel).
			Stringer("phase", d.Phase).
			Stringer("peak", d.Peak).Bool("hasPeak", d.HasPeak).
			Int("rotate", d.Rotate).Int("power", d.Power).
			Msg("Turn")
		if err := wr.Command(d.Command); err != nil {
			return fmt.Errorf("write turn %d: %w", turn, err)
		}

		s, err = rd.LanderState()
		if errors.Is(err, io.EOF) {
			log.Info().Int("turns", turn+1).Msg("Input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read turn %d: %w", turn+1, err)
		}
	}
}
