package server

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github/chapool/evm-gateway/internal/config"
	"golang.org/x/term"
)

// promptKeystorePassword asks for the keystore password when a keystore file
// is configured without one and stdin is a terminal.
func promptKeystorePassword(cfg *config.Server) error {
	if cfg.Gateway.KeystoreFile == "" || cfg.Gateway.KeystorePassword != "" {
		return nil
	}

	fd := int(os.Stdin.Fd()) //nolint:gosec // stdin fd fits into int
	if !term.IsTerminal(fd) {
		log.Warn().Str("keystore", cfg.Gateway.KeystoreFile).Msg("Keystore password not configured and stdin is not a terminal")
		return nil
	}

	log.Info().Str("keystore", cfg.Gateway.KeystoreFile).Msg("Keystore found. Please enter password to unlock...")

	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Print("Enter keystore password: ")

	password, err := term.ReadPassword(fd)
	if err != nil {
		return errors.Wrap(err, "failed to read password from terminal")
	}

	//nolint:forbidigo // Password input requires direct terminal I/O
	fmt.Println()

	cfg.Gateway.KeystorePassword = string(password)

	return nil
}
