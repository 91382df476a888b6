// Copyright 2026 The NearKit Authors
// SPDX-License-Identifier: Apache-2.0

package accountid

// GrammarPattern is the account ID grammar as a regular expression:
// dot-separated labels, each label lowercase alphanumeric with interior
// "-"/"_" separators that never touch a label edge or each other. The
// pattern intentionally omits the length bounds — schema consumers
// express those through MinLength/MaxLength, and the runtime validator
// (not this pattern) is the source of truth for the grammar.
const GrammarPattern = `^(([a-z\d]+[\-_])*[a-z\d]+\.)*([a-z\d]+[\-_])*[a-z\d]+$`

// Schema is the JSON Schema representation of the account ID type:
// a bounded, patterned string. Marshals to both JSON and YAML.
type Schema struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Type        string `json:"type" yaml:"type"`
	MinLength   int    `json:"minLength" yaml:"minLength"`
	MaxLength   int    `json:"maxLength" yaml:"maxLength"`
	Pattern     string `json:"pattern" yaml:"pattern"`
}

// JSONSchema returns the schema reflection of the AccountID type, for
// embedding in API schemas and contract ABI descriptions.
func JSONSchema() Schema {
	return Schema{
		Title:       "AccountID",
		Description: "NEAR account identifier: 2-64 characters of dot-separated lowercase alphanumeric labels with interior '-' or '_' separators.",
		Type:        "string",
		MinLength:   MinLength,
		MaxLength:   MaxLength,
		Pattern:     GrammarPattern,
	}
}
