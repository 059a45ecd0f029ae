package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlab/swlin/internal/types"
)

func TestCheckForceUnwrap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{
			name:     "unwrap after identifier",
			code:     "let name = user!\n",
			expected: 1,
		},
		{
			name:     "unwrap with member access",
			code:     "let count = items!.count\n",
			expected: 1,
		},
		{
			name:     "unwrap after call",
			code:     "let first = fetch()!\n",
			expected: 1,
		},
		{
			name:     "unwrap after subscript",
			code:     "let item = cache[key]!\n",
			expected: 1,
		},
		{
			name:     "unwrap of self property",
			code:     "return self.delegate!\n",
			expected: 1,
		},
		{
			name:     "not-equal comparison",
			code:     "if status != nil { }\n",
			expected: 0,
		},
		{
			name:     "prefix negation",
			code:     "let inverted = !flag\n",
			expected: 0,
		},
		{
			name:     "bang inside string literal",
			code:     "let warning = \"do not do user! here\"\n",
			expected: 0,
		},
		{
			name:     "bang inside comment",
			code:     "// user! would crash\nlet ok = 1\n",
			expected: 0,
		},
		{
			name:     "multiple unwraps",
			code:     "let a1 = user!\nlet a2 = session!\n",
			expected: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := scanSource(t, tt.code)
			issues, err := CheckForceUnwrap("test.swift", file, types.SeverityError)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
			for _, issue := range issues {
				assert.Equal(t, "force-unwrap", issue.Rule)
				assert.Equal(t, types.SeverityError, issue.Severity)
			}
		})
	}
}

func TestCheckForceUnwrapPosition(t *testing.T) {
	t.Parallel()
	file := scanSource(t, "let name = user!\n")
	issues, err := CheckForceUnwrap("test.swift", file, types.SeverityError)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 1, issues[0].Start.Line)
	assert.Equal(t, 16, issues[0].Start.Column)
}
