package mariadbclient

import (
	"github.com/mariadb-notebook/mariadb-client-go/internal/config"
)

// Config is the collaborator contract a host supplies to describe the client
// connection: the binary path and an opaque connection-argument string.
// Pass one to Start via WithConfig.
type Config = config.Config

// Channel is the prompt-synchronized transport interface underneath the
// client. Inject a custom implementation via WithChannel for testing or
// alternative transports.
type Channel = config.Channel

// LoadConfig reads the connection configuration from
// ~/.mariadb-client/config.yaml ("client_bin" and "args" keys). A missing
// file yields an empty configuration, which leaves binary discovery to the
// driver.
func LoadConfig() (Config, error) {
	return config.Load()
}
