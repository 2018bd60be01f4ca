package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		errText string
	}{
		{
			name:    "invalid yaml",
			data:    "rules: [unclosed",
			errText: "parse rule set",
		},
		{
			name:    "no rules",
			data:    "default_response: nope\nrules: []\n",
			errText: "no rules",
		},
		{
			name: "missing default response",
			data: `
rules:
  - name: a
    patterns: ['\ba\b']
    responses: [ok]
`,
			errText: "default_response",
		},
		{
			name: "invalid pattern",
			data: `
default_response: nope
rules:
  - name: a
    patterns: ['([']
    responses: [ok]
`,
			errText: "pattern",
		},
		{
			name: "rule without name",
			data: `
default_response: nope
rules:
  - patterns: ['\ba\b']
    responses: [ok]
`,
			errText: "missing name",
		},
		{
			name: "rule without patterns",
			data: `
default_response: nope
rules:
  - name: a
    responses: [ok]
`,
			errText: "no patterns",
		},
		{
			name: "rule without responses",
			data: `
default_response: nope
rules:
  - name: a
    patterns: ['\ba\b']
`,
			errText: "no responses",
		},
		{
			name: "duplicate rule names",
			data: `
default_response: nope
rules:
  - name: a
    patterns: ['\ba\b']
    responses: [ok]
  - name: a
    patterns: ['\bb\b']
    responses: [ok]
`,
			errText: "duplicate rule name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load([]byte(tt.data))
			require.Error(t, err)
			assert.Nil(t, table)
			assert.Contains(t, err.Error(), tt.errText)
		})
	}
}

func TestLoadDefaultBotName(t *testing.T) {
	table, err := Load([]byte(`
default_response: nope
rules:
  - name: a
    patterns: ['\ba\b']
    responses: [ok]
`))
	require.NoError(t, err)
	assert.Equal(t, "Course Assistant", table.BotName())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testRuleSet), 0644))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Bot", table.BotName())

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read rule set")
}

func TestLoadDefault(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "Course Assistant", table.BotName())
	assert.NotEmpty(t, table.DefaultResponse())
	assert.NotEmpty(t, table.Topics())

	names := make([]string, 0, len(table.Rules()))
	for _, r := range table.Rules() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{
		"greeting",
		"course_info",
		"assessment",
		"libraries",
		"help_project",
		"github",
		"current_time",
		"thanks",
		"goodbye",
	}, names)
}

func TestEmbeddedRuleSetMatching(t *testing.T) {
	table, err := LoadDefault()
	require.NoError(t, err)

	tests := []struct {
		input  string
		intent string
	}{
		{"hello there", "greeting"},
		{"good morning", "greeting"},
		{"what is dai011", "course_info"},
		{"when is the exam", "assessment"},
		{"which libraries do we use", "libraries"},
		{"im stuck on my project", "help_project"},
		{"how do i push to github", "github"},
		{"what time is it", "current_time"},
		{"thank you", "thanks"},
		{"see you", "goodbye"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			rule, ok := table.Match(tt.input)
			require.True(t, ok, "expected a match for %q", tt.input)
			assert.Equal(t, tt.intent, rule.Name())
		})
	}

	_, ok := table.Match("completely unrelated gibberish")
	assert.False(t, ok)
}
