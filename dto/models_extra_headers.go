package dto

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtraHeaders is a comma separated key=value string defined for use with
// Viper flag parsing.
type ExtraHeaders map[string]string

func (e ExtraHeaders) String() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// Set parses a comma separated key=value string into the map.
func (e ExtraHeaders) Set(s string) error {
	for _, header := range strings.Split(s, ",") {
		name, value, found := strings.Cut(header, "=")
		if !found || name == "" {
			return fmt.Errorf("malformed header pair %q, want key=value", header)
		}
		e[name] = value
	}
	return nil
}

func (e ExtraHeaders) Type() string {
	return "ExtraHeaders"
}
