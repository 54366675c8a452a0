package masking

import (
	"fmt"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPattern is the declarative form compiled once at service construction.
type builtinPattern struct {
	name        string
	pattern     string
	replacement string
}

// builtinPatterns mirrors the shape of a config-driven masking pattern table,
// but is hardcoded here since this codebase has no MCP-server-style registry
// to source custom patterns from.
var builtinPatterns = []builtinPattern{
	{"ssn", `\b\d{3}-\d{2}-\d{4}\b`, "[REDACTED_SSN]"},
	{"credit_card", `\b(?:\d[ -]*?){13,16}\b`, "[REDACTED_CARD]"},
	{"email", `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`, "[REDACTED_EMAIL]"},
	{"phone", `\b\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}\b`, "[REDACTED_PHONE]"},
	{"api_key", `(?i)(api[_-]?key|token|secret)\s*[:=]\s*['"]?[A-Za-z0-9_\-./+]{12,}['"]?`, "[REDACTED_CREDENTIAL]"},
	{"routing_account", `\b(?:routing|account)[_ ]?(?:number|no|#)?\s*[:=]?\s*\d{6,17}\b`, "[REDACTED_BANK_NUMBER]"},
}

// builtinPatternGroups names which builtin patterns apply under each
// pattern_group key from internal/config.MaskingConfig.PatternGroup.
var builtinPatternGroups = map[string][]string{
	"default": {"ssn", "credit_card", "email", "phone", "api_key", "routing_account"},
	"basic":   {"api_key"},
	"pii":     {"ssn", "credit_card", "email", "phone", "routing_account"},
}

func compileBuiltinPatterns() map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern, len(builtinPatterns))
	for _, p := range builtinPatterns {
		re, err := regexp.Compile(p.pattern)
		if err != nil {
			// A malformed builtin pattern is a programmer error, not a
			// runtime condition to recover from silently.
			panic(fmt.Sprintf("masking: invalid builtin pattern %q: %v", p.name, err))
		}
		compiled[p.name] = &CompiledPattern{Name: p.name, Regex: re, Replacement: p.replacement}
	}
	return compiled
}
