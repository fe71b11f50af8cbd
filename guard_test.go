// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		include []string
		exclude []string
		wantErr bool
	}{
		{name: "disjoint", include: []string{"cat", "car"}, exclude: []string{"cap"}},
		{name: "empty exclude", include: []string{"cat"}},
		{name: "empty include", exclude: []string{"cat"}, wantErr: true},
		{name: "shared word", include: []string{"top"}, exclude: []string{"top"}, wantErr: true},
		{name: "caret in include", include: []string{"a^b"}, exclude: []string{"c"}, wantErr: true},
		{name: "dollar in exclude", include: []string{"a"}, exclude: []string{"c$"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := validateWords(tc.include, tc.exclude)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateWordsMessage(t *testing.T) {
	t.Parallel()

	err := validateWords([]string{"top"}, []string{"top"})
	require.EqualError(t, err, `invalid word lists: "top" is included in both the include and exclude lists`)
}
