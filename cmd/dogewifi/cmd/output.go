package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
)

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseSettings turns repeated key=value flags into extra config lines.
func parseSettings(pairs []string) ([]dogewifi.Setting, error) {
	var out []dogewifi.Setting
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", p)
		}
		out = append(out, dogewifi.Setting{Key: k, Value: v})
	}
	return out, nil
}
