// Package cli provides discovery and command building for the mariadb
// command-line client binary.
//
// Discovery searches in the following order:
//  1. Explicit path in Config.ClientBin (if provided)
//  2. "mariadb", then "mysql", in the system PATH
//  3. Common installation directories (/usr/local/bin, /usr/bin, ~/.local/bin)
//
// During discovery the client version is probed with --version; the result is
// logged only, never enforced.
package cli
