package lints

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftlab/swlin/internal/types"
)

func TestCheckNestingDepth(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		code     string
		limit    int
		expected int
	}{
		{
			name:     "single conditional",
			code:     "func load() {\n  if ready {\n    run()\n  }\n}\n",
			limit:    1,
			expected: 0,
		},
		{
			name: "two nested conditionals",
			code: "func load(user: User?) {\n" +
				"  if isConnected {\n" +
				"    if user != nil {\n" +
				"      sync()\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 1,
		},
		{
			name: "three nested conditionals report once",
			code: "func load() {\n" +
				"  if a {\n" +
				"    if b {\n" +
				"      if c {\n" +
				"        run()\n" +
				"      }\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 1,
		},
		{
			name: "two siblings inside one root report once",
			code: "func load() {\n" +
				"  if a {\n" +
				"    if b {\n" +
				"      run()\n" +
				"    }\n" +
				"    if c {\n" +
				"      run()\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 1,
		},
		{
			name: "two separate chains report separately",
			code: "func load() {\n" +
				"  if a {\n" +
				"    if b {\n" +
				"      run()\n" +
				"    }\n" +
				"  }\n" +
				"  if c {\n" +
				"    if d {\n" +
				"      run()\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 2,
		},
		{
			name: "closure body resets depth",
			code: "func load() {\n" +
				"  if a {\n" +
				"    items.forEach { item in\n" +
				"      process(item)\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 0,
		},
		{
			name: "guard does not count",
			code: "func load() {\n" +
				"  guard ready else {\n" +
				"    return\n" +
				"  }\n" +
				"  if a {\n" +
				"    run()\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 0,
		},
		{
			name: "higher limit tolerated",
			code: "func load() {\n" +
				"  if a {\n" +
				"    if b {\n" +
				"      run()\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    2,
			expected: 0,
		},
		{
			name: "while and switch count as conditionals",
			code: "func drain() {\n" +
				"  while hasNext {\n" +
				"    switch next() {\n" +
				"    }\n" +
				"  }\n" +
				"}\n",
			limit:    1,
			expected: 1,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			file := scanSource(t, tt.code)
			issues, err := CheckNestingDepth("test.swift", file, tt.limit, types.SeverityWarning)
			require.NoError(t, err)
			assert.Len(t, issues, tt.expected)
			for _, issue := range issues {
				assert.Equal(t, "nesting-depth", issue.Rule)
			}
		})
	}
}

func TestCheckNestingDepthReportsOuterConditional(t *testing.T) {
	t.Parallel()
	code := "func load() {\n" +
		"  if a {\n" +
		"    if b {\n" +
		"      run()\n" +
		"    }\n" +
		"  }\n" +
		"}\n"
	file := scanSource(t, code)
	issues, err := CheckNestingDepth("test.swift", file, 1, types.SeverityWarning)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, 2, issues[0].Start.Line)
	assert.Equal(t, 3, issues[0].Start.Column)
}
