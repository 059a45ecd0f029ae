package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlab/swlin/internal/types"
)

func TestCheckMarkComments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name:     "conformance extension without marker",
			code:     "extension ListController: DataSource {\n}\n",
			expected: 1,
		},
		{
			name:     "marker directly above",
			code:     "// MARK: - DataSource\nextension ListController: DataSource {\n}\n",
			expected: 0,
		},
		{
			name:     "marker above blank line",
			code:     "// MARK: - DataSource\n\nextension ListController: DataSource {\n}\n",
			expected: 0,
		},
		{
			name:     "plain comment above is not a marker",
			code:     "// adds table wiring\nextension ListController: DataSource {\n}\n",
			expected: 1,
		},
		{
			name:     "non-conformance extension needs no marker",
			code:     "extension ListController {\n}\n",
			expected: 0,
		},
		{
			name:     "dotted type name",
			code:     "extension UIKit.UITableView: Refreshable {\n}\n",
			expected: 1,
		},
		{
			name:     "code line above blocks the marker",
			code:     "// MARK: - DataSource\nlet spacer = 1\nextension ListController: DataSource {\n}\n",
			expected: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := scanSource(t, tt.code)
			issues, err := CheckMarkComments("test.swift", file, types.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
			for _, issue := range issues {
				assert.Equal(t, "mark-comment", issue.Rule)
			}
		})
	}
}

func TestCheckMarkCommentsPosition(t *testing.T) {
	t.Parallel()
	file := scanSource(t, "let spacer = 1\nextension Store: Codable {\n}\n")
	issues, err := CheckMarkComments("test.swift", file, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 1, issues[0].Start.Column)
}
