// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/discrex"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join("testdata", "lists.yaml"))
	require.NoError(t, err)
	require.Equal(t, discrex.RewriteSinglePass, cfg.Options.Rewrite)
	require.Equal(t, []string{"pets", "vehicles", "fruits"}, cfg.Lists.Names())

	words, err := cfg.Lists.Get("vehicles")
	require.NoError(t, err)
	require.Equal(t, []string{"car", "truck", "tram"}, words)

	words, err = cfg.Lists.Get("fruits")
	require.NoError(t, err)
	require.Equal(t, []string{"apple", "pear", "plum"}, words)
}

func TestParseConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
	}{
		{name: "no lists", src: "options:\n  rewrite: none\n"},
		{name: "one list", src: "lists:\n  a: [x]\n"},
		{name: "lists not mapping", src: "lists: [a, b]\n"},
		{name: "words not sequence", src: "lists:\n  a: x\n  b: [y]\n"},
		{name: "duplicate list", src: "lists:\n  a: [x]\n  a: [y]\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig([]byte(tc.src))
			require.Error(t, err)
		})
	}
}

func TestParseConfigInvalidLists(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig([]byte("lists:\n  a: [x]\n"))
	require.ErrorIs(t, err, ErrInvalidLists)

	_, err = ParseConfig([]byte("lists: [a, b]\n"))
	require.ErrorIs(t, err, ErrInvalidLists)
}

func TestLoadConfigMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestWordLists(t *testing.T) {
	t.Parallel()

	words := []string{"x", "y"}
	lists := NewWordLists()
	require.NoError(t, lists.Add("a", words))
	require.ErrorIs(t, lists.Add("a", nil), ErrInvalidLists)
	require.ErrorIs(t, lists.Add("", nil), ErrInvalidLists)

	words[0] = "mutated"
	got, err := lists.Get("a")
	require.NoError(t, err)
	require.Equal(t, []string{"x", "y"}, got)

	_, err = lists.Get("b")
	require.ErrorIs(t, err, ErrUnknownList)
	require.Equal(t, 1, lists.Len())
}

func TestBuiltinLists(t *testing.T) {
	t.Parallel()

	lists := BuiltinLists()
	require.Equal(t, []string{"numericProps", "pxProps", "random1", "random2"}, lists.Names())

	for _, name := range lists.Names() {
		words, err := lists.Get(name)
		require.NoError(t, err)
		require.NotEmpty(t, words)
		require.Len(t, discrex.MergeWords(words), len(words), "list %s has repeats", name)
	}
}
