package test

import (
	"os"
	"path/filepath"
	"testing"

	"github/chapool/evm-gateway/internal/config"
	"github/chapool/evm-gateway/internal/util"
)

// DotEnvLoadLocalOrSkipTest tries to load the `.env.local` file in the project root
// and applies its values through t.Setenv. The test is skipped if the file is missing.
func DotEnvLoadLocalOrSkipTest(t *testing.T) {
	t.Helper()

	absolutePathToEnvFile := filepath.Join(util.GetProjectRootDir(), ".env.local")

	if _, err := os.Stat(absolutePathToEnvFile); err != nil {
		t.Skipf("Skipping test, as '%s' was not found.", absolutePathToEnvFile)
	}

	err := config.DotEnvLoad(absolutePathToEnvFile, func(k string, v string) error {
		t.Setenv(k, v)
		return nil
	})

	if err != nil {
		t.Fatalf("Failed to load dotenv file from '%s': %v", absolutePathToEnvFile, err)
	}
}
