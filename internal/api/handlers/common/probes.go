package common

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github/chapool/evm-gateway/internal/gateway/registry"
	"github/chapool/evm-gateway/internal/util"
)

// ProbeReadiness checks that the persisted chains file can still be read.
func ProbeReadiness(ctx context.Context, chainsFile string) []error {
	log := util.LogFromContext(ctx)

	var errs []error

	if _, err := registry.NewFileStore(chainsFile).Load(ctx); err != nil {
		log.Warn().Err(err).Str("chains_file", chainsFile).Msg("Readiness probe failed for chains file")
		errs = append(errs, errors.Wrap(err, "chains file"))
	}

	if ctx.Err() != nil {
		errs = append(errs, errors.Wrap(ctx.Err(), "readiness deadline"))
	}

	return errs
}

// ProbeLiveness touches touchfile in every path of writeablePaths.
func ProbeLiveness(ctx context.Context, writeablePaths []string, touchfile string) []error {
	log := util.LogFromContext(ctx)

	var errs []error

	for _, writeablePath := range writeablePaths {
		if ctx.Err() != nil {
			errs = append(errs, errors.Wrap(ctx.Err(), "liveness deadline"))
			break
		}

		if err := touch(filepath.Join(writeablePath, touchfile)); err != nil {
			log.Warn().Err(err).Str("path", writeablePath).Msg("Liveness probe failed for writeable path")
			errs = append(errs, errors.Wrapf(err, "writeable path %s", writeablePath))
		}
	}

	return errs
}

func touch(path string) error {
	content := fmt.Sprintf("%d", time.Now().Unix())

	//nolint:gosec,mnd
	return os.WriteFile(path, []byte(content), 0o644)
}
