// Package tools_conffile renders option records into the line-oriented
// config files read by hostapd, udhcpd and wpa_supplicant.
//
// Options are a tree of scalars, lists and ordered maps. Flattening walks
// the tree depth first and emits one line per scalar, prefixed with the
// path of keys that lead to it. A list repeats its key path once per
// element. Output follows entry order; nothing is sorted.
package tools_conffile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Kind int

const (
	KindScalar Kind = iota
	KindList
	KindMap
)

type Value struct {
	kind    Kind
	scalar  string
	list    []string
	entries []Entry
}

type Entry struct {
	Key   string
	Value Value
}

func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func Int(i int) Value {
	return String(strconv.Itoa(i))
}

func List(items ...string) Value {
	return Value{kind: KindList, list: items}
}

func Map(entries ...Entry) Value {
	return Value{kind: KindMap, entries: entries}
}

// E is shorthand for an Entry.
func E(key string, v Value) Entry {
	return Entry{Key: key, Value: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

// Line is one flattened leaf: the key path down to it and its value.
type Line struct {
	Path  []string
	Value string
}

// Join renders the line with the key path space separated and sep between
// the path and the value.
func (l Line) Join(sep string) string {
	return strings.Join(l.Path, " ") + sep + l.Value
}

// Flatten walks root depth first. A scalar root yields a single line with
// an empty path.
func Flatten(root Value) []Line {
	var lines []Line
	flatten(root, nil, &lines)
	return lines
}

func flatten(v Value, path []string, lines *[]Line) {
	switch v.kind {
	case KindScalar:
		*lines = append(*lines, Line{Path: clonePath(path), Value: v.scalar})
	case KindList:
		for _, item := range v.list {
			*lines = append(*lines, Line{Path: clonePath(path), Value: item})
		}
	case KindMap:
		for _, e := range v.entries {
			flatten(e.Value, append(path, e.Key), lines)
		}
	}
}

func clonePath(path []string) []string {
	return append([]string(nil), path...)
}

// Render flattens root and joins every line with sep.
func Render(root Value, sep string) []string {
	flat := Flatten(root)
	out := make([]string, 0, len(flat))
	for _, l := range flat {
		out = append(out, l.Join(sep))
	}
	return out
}

// Path is where a tool's config for iface is staged inside dir.
func Path(dir, iface, tool string) string {
	return filepath.Join(dir, fmt.Sprintf("%s-%s.conf", iface, tool))
}

// WriteFile writes lines, newline terminated, to path with mode 0600.
func WriteFile(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
