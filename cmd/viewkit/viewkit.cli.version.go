package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/itsatony/go-viewkit"
)

// buildInfo describes this binary: the release recorded in versions.yaml and
// the template engines compiled in
type buildInfo struct {
	Version       string   `json:"version"`
	Commit        string   `json:"commit"`
	GoVersion     string   `json:"go_version"`
	Engines       []string `json:"engines"`
	DefaultEngine string   `json:"default_engine"`
}

// releaseFile is the subset of versions.yaml the CLI reports
type releaseFile struct {
	Project struct {
		Version string `yaml:"version"`
	} `yaml:"project"`
	Git struct {
		Commit string `yaml:"commit"`
	} `yaml:"git"`
}

// versionFilePaths are searched in order for versions.yaml
var versionFilePaths = []string{"versions.yaml", "../versions.yaml", "../../versions.yaml"}

func runVersion(args []string, stdout, stderr io.Writer) int {
	format, err := parseFormatFlag(CmdNameVersion, args)
	if err != nil {
		fmt.Fprintf(stderr, FmtErrorWithCause, ErrMsgInvalidFormat, err)
		return ExitCodeUsageError
	}

	info := getBuildInfo(versionFilePaths)

	if format == OutputFormatJSON {
		jsonBytes, _ := json.MarshalIndent(info, "", FmtJSONIndent)
		fmt.Fprintln(stdout, string(jsonBytes))
		return ExitCodeSuccess
	}

	fmt.Fprintf(stdout, VersionTextTemplate+FmtNewline,
		info.Version, info.Commit, info.GoVersion, strings.Join(info.Engines, EngineListSeparator), info.DefaultEngine)
	return ExitCodeSuccess
}

// getBuildInfo reads the first decodable release file in paths
func getBuildInfo(paths []string) *buildInfo {
	info := &buildInfo{
		Version:       VersionUnknown,
		Commit:        VersionUnknown,
		GoVersion:     runtime.Version(),
		Engines:       viewkit.ListAdapters(),
		DefaultEngine: FlagDefaultEngine,
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var release releaseFile
		if err := yaml.Unmarshal(data, &release); err != nil {
			continue
		}

		if release.Project.Version != "" {
			info.Version = release.Project.Version
		}
		if release.Git.Commit != "" {
			info.Commit = release.Git.Commit
		}
		break
	}

	return info
}
