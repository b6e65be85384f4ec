package cli

import (
	"encoding/json"
	"fmt"
)

// printJSON writes v as indented JSON to stdout. Used by every command's
// --json flag so output can feed scripts and other tools.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
