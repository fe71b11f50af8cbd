// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerifyPattern(t *testing.T) {
	t.Parallel()

	re, err := verifyPattern("r|t", []string{"cat", "car"}, []string{"cap", "can"})
	require.NoError(t, err)
	require.Equal(t, "r|t", re.String())
}

func TestVerifyPatternReportsEveryWord(t *testing.T) {
	t.Parallel()

	_, err := verifyPattern("a", []string{"a", "b", "c"}, []string{"ba", "x"})
	require.ErrorIs(t, err, ErrVerification)

	var verr *VerificationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, "a", verr.Pattern)
	require.Equal(t, []string{"ba"}, verr.Matched)
	require.Equal(t, []string{"b", "c"}, verr.Unmatched)
	require.EqualError(t, err, `pattern verification failed: "a" matched: ba; unmatched: b, c`)
}

func TestVerifyPatternCompileError(t *testing.T) {
	t.Parallel()

	_, err := verifyPattern("(", []string{"a"}, nil)
	require.ErrorIs(t, err, ErrVerification)

	var verr *VerificationError
	require.False(t, errors.As(err, &verr))
}
