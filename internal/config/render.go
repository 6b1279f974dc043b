package config

import (
	"fmt"
	"strconv"
	"strings"
)

// section is one [table] of options with the table prefix stripped.
type section struct {
	name string
	opts []ConfigOption
}

// groupOptions splits opts into top-level keys and tables, keeping their order.
func groupOptions(opts []ConfigOption) (top []ConfigOption, sections []section) {
	index := map[string]int{}
	for _, o := range opts {
		name, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			top = append(top, o)
			continue
		}
		i, seen := index[name]
		if !seen {
			i = len(sections)
			index[name] = i
			sections = append(sections, section{name: name})
		}
		sections[i].opts = append(sections[i].opts, ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, sections
}

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var lines []string
	lines = append(lines, "# portfolio configuration (TOML)", "")
	top, sections := groupOptions(GetConfigOptions())
	for _, o := range top {
		writeTOMLOptionLines(&lines, o)
	}
	for _, s := range sections {
		lines = append(lines, "["+s.name+"]")
		for _, o := range s.opts {
			writeTOMLOptionLines(&lines, o)
		}
	}
	return strings.Join(lines, "\n")
}

// UpdateTOML merges defaults into an existing TOML string and comments out unknown keys.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	opts := GetConfigOptions()

	known := make(map[string]bool, len(opts))
	for _, o := range opts {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	current := ""
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		if isTable(trim) {
			current = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		full := key
		if current != "" {
			full = current + "." + key
		}
		seen[full] = true
		if !known[full] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	var missing []ConfigOption
	for _, o := range opts {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	// top-level keys must precede the first table
	top, sections := groupOptions(missing)
	if len(top) > 0 {
		var add []string
		for _, o := range top {
			writeTOMLOptionLines(&add, o)
		}
		out = insertAt(out, firstTable(out), add)
	}
	var appended bool
	for _, s := range sections {
		var add []string
		for _, o := range s.opts {
			writeTOMLOptionLines(&add, o)
		}
		if end, ok := tableEnd(out, s.name); ok {
			out = insertAt(out, end, add)
			continue
		}
		if !appended {
			out = append(out, "", "# Added by config update")
			appended = true
		}
		out = append(out, "["+s.name+"]")
		out = append(out, add...)
	}
	return strings.Join(out, "\n"), true
}

func insertAt(lines []string, at int, add []string) []string {
	out := make([]string, 0, len(lines)+len(add))
	out = append(out, lines[:at]...)
	out = append(out, add...)
	return append(out, lines[at:]...)
}

func isTable(line string) bool {
	t := strings.TrimSpace(line)
	return strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]")
}

// tableEnd returns the index just past the last line of table name.
func tableEnd(lines []string, name string) (int, bool) {
	for i, l := range lines {
		if strings.TrimSpace(l) != "["+name+"]" {
			continue
		}
		j := i + 1
		for j < len(lines) && !isTable(lines[j]) {
			j++
		}
		return j, true
	}
	return 0, false
}

func firstTable(lines []string) int {
	for i, l := range lines {
		if isTable(l) {
			return i
		}
	}
	return len(lines)
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") || strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOptionLines(lines *[]string, o ConfigOption) {
	if o.Comment != "" {
		*lines = append(*lines, "# "+o.Comment)
	}
	*lines = append(*lines, o.Key+" = "+tomlValue(o.Default), "")
}

func tomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return strconv.Quote(v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = strconv.Quote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
