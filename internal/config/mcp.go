package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// DefaultAPIURL is the API the MCP bridge talks to when MEMORIA_API_URL is unset.
const DefaultAPIURL = "http://localhost:8080"

// MCPConfig configures the stdio MCP bridge. It is read from the environment
// only, since the bridge is launched by an agent host rather than deployed.
type MCPConfig struct {
	APIURL string
	Token  string
	Debug  bool
}

// LoadMCP reads MEMORIA_API_URL, MEMORIA_PAT and DEBUG. The token is required.
func LoadMCP(getenv func(string) string) (MCPConfig, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	cfg := MCPConfig{
		APIURL: strings.TrimRight(strings.TrimSpace(getenv("MEMORIA_API_URL")), "/"),
		Token:  strings.TrimSpace(getenv("MEMORIA_PAT")),
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Token == "" {
		return MCPConfig{}, fmt.Errorf("MEMORIA_PAT is required")
	}
	if v := getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return MCPConfig{}, fmt.Errorf("DEBUG must be a boolean, got %q", v)
		}
		cfg.Debug = debug
	}
	return cfg, nil
}
