// Package tests contains unit tests for manifest line scanning.
package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bumpver/bumpver/service/scanner"
)

// TestMatchVersionLines tests the line expression against manifest shapes
func TestMatchVersionLines(t *testing.T) {
	svc, err := scanner.NewService("version")
	require.NoError(t, err)

	tests := []struct {
		name      string
		line      string
		wantValue string
		wantMatch bool
	}{
		{name: "plain declaration", line: `version = "0.1.4"`, wantValue: "0.1.4", wantMatch: true},
		{name: "extra whitespace", line: `   version   =   "1.2.3"`, wantValue: "1.2.3", wantMatch: true},
		{name: "no spaces", line: `version="1.0.0"`, wantValue: "1.0.0", wantMatch: true},
		{name: "empty quoted value", line: `version = ""`, wantValue: "", wantMatch: true},
		{name: "unquoted value", line: `version = 0.1.4`, wantMatch: false},
		{name: "missing equals", line: `version "0.1.4"`, wantMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := svc.MatchLine(tt.line)
			assert.Equal(t, tt.wantMatch, ok)
			if tt.wantMatch {
				assert.Equal(t, tt.wantValue, got)
			}
		})
	}
}

// TestCandidateFilter tests the trimmed prefix gate ahead of the expression
func TestCandidateFilter(t *testing.T) {
	svc, err := scanner.NewService("version")
	require.NoError(t, err)

	assert.True(t, svc.IsCandidate(`version = "0.1.4"`))
	assert.True(t, svc.IsCandidate(`  version = "0.1.4"`))
	assert.False(t, svc.IsCandidate(`name = "demo"`))
	assert.False(t, svc.IsCandidate(`# version = "0.1.4"`))
}

// TestCustomFieldName tests targeting a different manifest field
func TestCustomFieldName(t *testing.T) {
	svc, err := scanner.NewService("app-version")
	require.NoError(t, err)

	got, ok := svc.MatchLine(`app-version = "3.2.1"`)
	assert.True(t, ok)
	assert.Equal(t, "3.2.1", got)

	_, ok = svc.MatchLine(`version = "3.2.1"`)
	assert.False(t, ok)

	assert.Equal(t, `\s*app-version\s*=\s*"(.*)"`, svc.Pattern())
}

// TestFieldNameMetacharactersQuoted tests regexp metacharacter escaping
func TestFieldNameMetacharactersQuoted(t *testing.T) {
	svc, err := scanner.NewService("version.build")
	require.NoError(t, err)

	_, ok := svc.MatchLine(`versionXbuild = "1.0.0"`)
	assert.False(t, ok)

	got, ok := svc.MatchLine(`version.build = "1.0.0"`)
	assert.True(t, ok)
	assert.Equal(t, "1.0.0", got)
}

// TestEmptyFieldRejected tests constructor validation
func TestEmptyFieldRejected(t *testing.T) {
	_, err := scanner.NewService("   ")
	assert.Error(t, err)
}
