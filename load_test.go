// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWordsFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "include.txt")
	err := os.WriteFile(path, []byte("cat\n# pets\ncar\n"), 0o600)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	words, err := LoadWordsFile(path)
	if err != nil {
		t.Fatalf("LoadWordsFile: %v", err)
	}

	if len(words) != 2 || words[0] != "cat" || words[1] != "car" {
		t.Fatalf("words=%q", words)
	}
}

func TestLoadWordsFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.txt")
	p2 := filepath.Join(dir, "b.txt")

	if err := os.WriteFile(p1, []byte("cat\ncar\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p1, err)
	}

	if err := os.WriteFile(p2, []byte("car\ncap\n"), 0o600); err != nil {
		t.Fatalf("WriteFile(%s): %v", p2, err)
	}

	words, err := LoadWordsFiles(p1, p2)
	if err != nil {
		t.Fatalf("LoadWordsFiles: %v", err)
	}

	want := []string{"cat", "car", "cap"}
	if len(words) != len(want) {
		t.Fatalf("words=%q, want %q", words, want)
	}

	for i := range want {
		if words[i] != want[i] {
			t.Fatalf("words[%d]=%q, want %q", i, words[i], want[i])
		}
	}
}

func TestLoadWordsFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadWordsFile(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("err=%v, want not exist", err)
	}
}

func TestLoadWordsFilesNone(t *testing.T) {
	t.Parallel()

	words, err := LoadWordsFiles()
	if err != nil {
		t.Fatalf("LoadWordsFiles: %v", err)
	}

	if len(words) != 0 {
		t.Fatalf("words=%q, want none", words)
	}
}
