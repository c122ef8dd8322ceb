// Package utils holds application-wide constants, version lookup, and logger construction.
package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion     = "unknown"
	develVersion       = "(devel)"
	gitDirectoryName   = ".git"
	gitExecutableName  = "git"
	gitDescribeCommand = "describe"
)

// gitDescribeArguments are tried in order; the first non-empty answer wins.
var gitDescribeArguments = [][]string{
	{gitDescribeCommand, "--tags", "--exact-match"},
	{gitDescribeCommand, "--tags", "--long", "--dirty"},
}

// GetApplicationVersion reports the module version recorded at build time and
// falls back to git describe when running from a checkout.
func GetApplicationVersion() string {
	if buildInfo, available := debug.ReadBuildInfo(); available {
		if moduleVersion := buildInfo.Main.Version; moduleVersion != "" && moduleVersion != develVersion {
			return moduleVersion
		}
	}

	repositoryRoot, found := findRepositoryRoot(".")
	if !found {
		return unknownVersion
	}
	for _, arguments := range gitDescribeArguments {
		// #nosec G204
		describeCommand := exec.Command(gitExecutableName, arguments...)
		describeCommand.Dir = repositoryRoot
		describeOutput, describeError := describeCommand.Output()
		if describeError != nil {
			continue
		}
		if version := strings.TrimSpace(string(describeOutput)); version != "" {
			return version
		}
	}
	return unknownVersion
}

// findRepositoryRoot walks upward from startDirectory to the first directory containing .git.
func findRepositoryRoot(startDirectory string) (string, bool) {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", false
	}
	for {
		if fileInformation, statError := os.Stat(filepath.Join(currentDirectory, gitDirectoryName)); statError == nil && fileInformation.IsDir() {
			return currentDirectory, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return "", false
		}
		currentDirectory = parentDirectory
	}
}
