package util

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"sync"
)

var (
	projectRootDir     string
	projectRootDirOnce sync.Once
)

// GetProjectRootDir returns the path as string to the project_root for a **running application**.
// Note: This function replaces the os.Getwd() calls we used in the past to resolve relative paths.
// If the PROJECT_ROOT_DIR ENV variable is set, it is used; otherwise the directory is derived from
// the location of this source file during development and from the working directory in production.
func GetProjectRootDir() string {
	projectRootDirOnce.Do(func() {
		if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
			projectRootDir = val
			return
		}

		_, b, _, ok := runtime.Caller(0)
		if ok {
			candidate := filepath.Join(filepath.Dir(b), "../..")
			if _, err := os.Stat(filepath.Join(candidate, "go.mod")); err == nil {
				projectRootDir = candidate
				return
			}
		}

		wd, err := os.Getwd()
		if err != nil {
			wd = "."
		}
		projectRootDir = wd
	})

	return projectRootDir
}

// RunningInTest returns true if the current binary was built by "go test".
func RunningInTest() bool {
	return flag.Lookup("test.v") != nil
}
