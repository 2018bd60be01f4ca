// Package embedded provides access to embedded rule set data files.
package embedded

import _ "embed"

// FAQRulesData contains the embedded default FAQ rule set YAML data.
//
//go:embed rules/faq.yaml
var FAQRulesData []byte
