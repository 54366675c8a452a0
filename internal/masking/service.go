package masking

import (
	"encoding/json"
	"log/slog"
)

// Service applies regex and code-based masking to text and structured
// payloads bound for an event's details JSON. Created once at startup and
// safe for concurrent use.
type Service struct {
	enabled      bool
	patternGroup string
	patterns     map[string]*CompiledPattern
	groups       map[string][]string
	codeMaskers  []Masker
}

// NewService builds a Service with all builtin patterns compiled eagerly.
// enabled=false makes every Mask* call a passthrough, matching the
// config.MaskingConfig.Enabled escape hatch.
func NewService(enabled bool, patternGroup string, extra ...Masker) *Service {
	s := &Service{
		enabled:      enabled,
		patternGroup: patternGroup,
		patterns:     compileBuiltinPatterns(),
		groups:       builtinPatternGroups,
		codeMaskers:  extra,
	}
	slog.Info("masking service initialized",
		"enabled", enabled, "pattern_group", patternGroup, "patterns", len(s.patterns))
	return s
}

// MaskText redacts PII/secret-shaped substrings from free text. It has no
// error path: patterns are compiled up front in NewService, so masking
// never blocks the event write.
func (s *Service) MaskText(text string) string {
	if !s.enabled || text == "" {
		return text
	}

	masked := text
	for _, m := range s.codeMaskers {
		if m.AppliesTo(masked) {
			masked = m.Mask(masked)
		}
	}

	for _, name := range s.groups[s.patternGroup] {
		cp, ok := s.patterns[name]
		if !ok {
			continue
		}
		masked = cp.Regex.ReplaceAllString(masked, cp.Replacement)
	}

	return masked
}

// MaskJSON walks a structured_data-shaped map and masks every string leaf,
// used before structured extraction output is copied into an event's
// details payload. Nested maps and slices are masked recursively; other
// value types pass through unchanged.
func (s *Service) MaskJSON(data map[string]interface{}) map[string]interface{} {
	if !s.enabled || data == nil {
		return data
	}
	out := make(map[string]interface{}, len(data))
	for k, v := range data {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return s.MaskText(val)
	case map[string]interface{}:
		return s.MaskJSON(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	default:
		return val
	}
}

// MaskJSONString masks a JSON-encoded blob's string leaves, decoding and
// re-encoding it. On decode failure it falls back to masking the raw text,
// since an undecodable blob is still worth scrubbing for credential-shaped
// substrings.
func (s *Service) MaskJSONString(raw string) string {
	if !s.enabled || raw == "" {
		return raw
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return s.MaskText(raw)
	}
	masked, err := json.Marshal(s.MaskJSON(data))
	if err != nil {
		return s.MaskText(raw)
	}
	return string(masked)
}
