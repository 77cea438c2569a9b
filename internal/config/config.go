package config

// Config is the collaborator contract a host supplies to describe the client
// connection: where the binary lives and which connection arguments to append.
// The argument text is opaque to the driver and passed through verbatim.
type Config interface {
	// ClientBin returns the path to the mariadb client binary.
	ClientBin() string

	// Args returns the connection arguments as a single opaque string.
	Args() string
}
