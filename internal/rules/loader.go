package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"coursebot/internal/data/embedded"
)

// ruleSpec is the YAML shape of a single rule.
type ruleSpec struct {
	Name      string   `yaml:"name"`
	Patterns  []string `yaml:"patterns"`
	Keywords  []string `yaml:"keywords"`
	Responses []string `yaml:"responses"`
}

// tableSpec is the YAML shape of a complete rule set file.
type tableSpec struct {
	BotName         string     `yaml:"bot_name"`
	Topics          []string   `yaml:"topics"`
	DefaultResponse string     `yaml:"default_response"`
	Rules           []ruleSpec `yaml:"rules"`
}

// Load parses YAML rule set data and compiles it into a Table.
// Patterns are matched against normalized (lowercase, punctuation-free)
// input, so they are compiled case-sensitively as written.
func Load(data []byte) (*Table, error) {
	var spec tableSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse rule set: %w", err)
	}

	if len(spec.Rules) == 0 {
		return nil, fmt.Errorf("rule set contains no rules")
	}
	if spec.DefaultResponse == "" {
		return nil, fmt.Errorf("rule set has no default_response")
	}

	table := &Table{
		botName:         spec.BotName,
		topics:          spec.Topics,
		defaultResponse: spec.DefaultResponse,
		rules:           make([]*Rule, 0, len(spec.Rules)),
	}
	if table.botName == "" {
		table.botName = "Course Assistant"
	}

	seen := make(map[string]struct{}, len(spec.Rules))
	for i, rs := range spec.Rules {
		rule, err := compileRule(rs)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", i, rs.Name, err)
		}
		if _, dup := seen[rule.name]; dup {
			return nil, fmt.Errorf("duplicate rule name %q", rule.name)
		}
		seen[rule.name] = struct{}{}
		table.rules = append(table.rules, rule)
	}

	return table, nil
}

// LoadFile reads a YAML rule set from disk.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rule set %s: %w", path, err)
	}
	return Load(data)
}

// LoadDefault builds the table from the embedded FAQ rule set.
func LoadDefault() (*Table, error) {
	return Load(embedded.FAQRulesData)
}

func compileRule(rs ruleSpec) (*Rule, error) {
	if rs.Name == "" {
		return nil, fmt.Errorf("missing name")
	}
	if len(rs.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns")
	}
	if len(rs.Responses) == 0 {
		return nil, fmt.Errorf("no responses")
	}

	rule := &Rule{
		name:      rs.Name,
		patterns:  make([]*regexp.Regexp, 0, len(rs.Patterns)),
		keywords:  rs.Keywords,
		responses: rs.Responses,
	}
	for _, raw := range rs.Patterns {
		p, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", raw, err)
		}
		rule.patterns = append(rule.patterns, p)
	}
	return rule, nil
}
