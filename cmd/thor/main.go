// Command thor plays Power of Thor episode 1: walk Thor onto the light of
// power before his turns run out.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"puzzle_bots/internal/config"
	"puzzle_bots/internal/logging"
	"puzzle_bots/internal/thor"
	"puzzle_bots/internal/turnio"
)

func main() {
	set, err := config.ParseSettings("thor", os.Args[1:])
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

	if err := play(os.Stdin, os.Stdout, cfg.Thor, log); err != nil {
		log.Fatal().Err(err).Msg("Game aborted")
	}
}

func play(in io.Reader, out io.Writer, cfg config.ThorConfig, log zerolog.Logger) error {
	rd := turnio.NewReader(in)
	wr := turnio.NewWriter(out)

	var light, start thor.Pos
	if err := rd.Ints(&light.X, &light.Y, &start.X, &start.Y); err != nil {
		return fmt.Errorf("read positions: %w", err)
	}
	st, err := thor.New(cfg, light, start)
	if err != nil {
		return err
	}
	log.Info().Ints("light", []int{light.X, light.Y}).Ints("thor", []int{start.X, start.Y}).Msg("Hunt started")

	for turn := 0; ; turn++ {
		var remaining int
		err := rd.Ints(&remaining)
		if errors.Is(err, io.EOF) {
			log.Info().Int("turns", turn).Msg("Input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read turn %d: %w", turn, err)
		}

		if st.Arrived() {
			log.Warn().Int("turn", turn).Msg("Already on the light")
		}
		dir := st.Step()
		log.Debug().Int("turn", turn).Int("remaining", remaining).Str("dir", dir).Msg("Turn")
		if err := wr.Line(dir); err != nil {
			return fmt.Errorf("write turn %d: %w", turn, err)
		}
	}
}
