package lints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/swiftlab/swlin/internal/scan"
)

func scanSource(t *testing.T, code string) *scan.File {
	t.Helper()
	file, err := scan.Source("test.swift", []byte(code))
	require.NoError(t, err)
	return file
}
