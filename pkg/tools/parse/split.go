package tools_parse

import (
	"regexp"
	"strings"
)

var blankLineRE = regexp.MustCompile(`\n[ \t]*\n`)

// SplitBlocks splits multi-record output (ifconfig -a, iwconfig) into the
// blocks separated by blank lines. Order is kept, empty blocks dropped.
func SplitBlocks(text string) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return nil
	}
	var blocks []string
	for _, b := range blankLineRE.Split(text, -1) {
		b = strings.Trim(b, "\n")
		if strings.TrimSpace(b) == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// SplitTable returns the data rows of a wpa_cli table. The first line is
// always the header and is dropped; blank lines are skipped. Only line
// breaks are trimmed: a trailing tab marks an empty last column.
func SplitTable(text string) []string {
	text = strings.Trim(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return nil
	}
	var rows []string
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, line)
	}
	return rows
}

// SplitAt cuts text at the start of every match of re. Text ahead of the
// first match is returned as its own leading section when non-empty.
func SplitAt(text string, re *regexp.Regexp) []string {
	idx := re.FindAllStringIndex(text, -1)
	if idx == nil {
		if strings.TrimSpace(text) == "" {
			return nil
		}
		return []string{text}
	}
	var sections []string
	if lead := text[:idx[0][0]]; strings.TrimSpace(lead) != "" {
		sections = append(sections, lead)
	}
	for i, loc := range idx {
		end := len(text)
		if i+1 < len(idx) {
			end = idx[i+1][0]
		}
		sections = append(sections, text[loc[0]:end])
	}
	return sections
}

// FirstToken is the first whitespace-delimited token of trimmed text.
func FirstToken(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// FirstLine is the first line of trimmed text, for error messages.
func FirstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	return line
}
