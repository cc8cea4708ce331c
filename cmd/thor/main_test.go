package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puzzle_bots/internal/config"
	"puzzle_bots/internal/thor"
)

func TestPlay(t *testing.T) {
	in := "0 3 4 1\n14\n13\n12\n11\n"
	var out bytes.Buffer

	require.NoError(t, play(strings.NewReader(in), &out, config.DefaultThor(), zerolog.Nop()))
	assert.Equal(t, "SW\nSW\nW\nW\n", out.String())
}

func TestPlayRejectsOffMap(t *testing.T) {
	var out bytes.Buffer
	err := play(strings.NewReader("50 3 4 1\n14\n"), &out, config.DefaultThor(), zerolog.Nop())
	require.ErrorIs(t, err, thor.ErrOffMap)
	assert.Empty(t, out.String())
}
