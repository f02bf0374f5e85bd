package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# marktext configuration (TOML)\n")

	opts := GetConfigOptions()
	topLevel := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	sectionOrder := make([]string, 0)

	for _, o := range opts {
		if !strings.Contains(o.Key, ".") {
			topLevel = append(topLevel, o)
			continue
		}
		parts := strings.SplitN(o.Key, ".", 2)
		section := parts[0]
		if _, ok := sections[section]; !ok {
			sectionOrder = append(sectionOrder, section)
		}
		sections[section] = append(sections[section], ConfigOption{
			Key:     parts[1],
			Default: o.Default,
			Comment: o.Comment,
		})
	}

	for _, o := range topLevel {
		writeTOMLOption(&b, o.Key, o.Default, o.Comment)
	}

	for _, section := range sectionOrder {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o.Key, o.Default, o.Comment)
		}
	}

	return b.String()
}

// UpdateTOML merges defaults into an existing TOML string and comments out
// keys no longer in the schema. Missing keys are inserted into their
// section when the file already declares it, so no table is defined twice.
// It reports whether anything changed.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	opts := GetConfigOptions()

	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	existingKeys := collectTOMLKeys(lines)

	// Missing options grouped by section, "" for the top level.
	missing := make(map[string][]ConfigOption)
	sectionOrder := make([]string, 0)
	for _, o := range opts {
		if existingKeys[o.Key] {
			continue
		}
		section, key := "", o.Key
		if parts := strings.SplitN(o.Key, ".", 2); len(parts) == 2 {
			section, key = parts[0], parts[1]
		}
		if _, ok := missing[section]; !ok {
			sectionOrder = append(sectionOrder, section)
		}
		missing[section] = append(missing[section], ConfigOption{
			Key:     key,
			Default: o.Default,
			Comment: o.Comment,
		})
	}

	out := make([]string, 0, len(lines))
	changed := false
	currentSection := ""

	marker := func() {
		if n := len(out); n > 0 && out[n-1] != "" {
			out = append(out, "")
		}
		out = append(out, "# Added by config update")
	}
	// flush appends the current section's missing keys before leaving it.
	flush := func() {
		group, ok := missing[currentSection]
		if !ok {
			return
		}
		delete(missing, currentSection)
		marker()
		for _, o := range group {
			writeTOMLOptionLines(&out, o.Key, o.Default, o.Comment)
		}
		changed = true
	}

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			out = append(out, line)
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			flush()
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}
	flush()

	// Sections the file never declared go at the end.
	tail := false
	for _, section := range sectionOrder {
		group, ok := missing[section]
		if !ok {
			continue
		}
		if !tail {
			marker()
			tail = true
		}
		out = append(out, "["+section+"]")
		for _, o := range group {
			writeTOMLOptionLines(&out, o.Key, o.Default, o.Comment)
		}
		changed = true
	}

	return strings.Join(out, "\n"), changed
}

// collectTOMLKeys gathers every key the file sets, qualified by section.
func collectTOMLKeys(lines []string) map[string]bool {
	keys := make(map[string]bool)
	section := ""
	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") || strings.HasPrefix(trim, ";") {
			continue
		}
		if strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]") {
			section = strings.TrimSpace(trim[1 : len(trim)-1])
			continue
		}
		if key, ok := parseTOMLKey(line); ok {
			if section != "" {
				key = section + "." + key
			}
			keys[key] = true
		}
	}
	return keys
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	switch v := value.(type) {
	case string:
		b.WriteString(fmt.Sprintf("%s = %q\n\n", key, v))
	default:
		b.WriteString(fmt.Sprintf("%s = %v\n\n", key, v))
	}
}

func writeTOMLOptionLines(lines *[]string, key string, value any, comment string) {
	if comment != "" {
		*lines = append(*lines, "# "+comment)
	}
	switch v := value.(type) {
	case string:
		*lines = append(*lines, fmt.Sprintf("%s = %q", key, v), "")
	default:
		*lines = append(*lines, fmt.Sprintf("%s = %v", key, v), "")
	}
}
