package corpus

import "github.com/pyhub-apps/gaejeong-cli/internal/config"

// NewClientFromConfig builds a Client using the NLIC API key saved in the
// CLI's persisted configuration, the same source the cmd layer already
// reads for every other NLIC-backed command.
func NewClientFromConfig() *Client {
	return NewClient(config.GetAPIKey())
}
