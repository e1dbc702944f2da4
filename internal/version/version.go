package version

import (
	"fmt"
	"runtime"
)

var (
	App       string = "RiskGate"
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	BuildOS   string
	BuildArch string
)

// PrintVersion prints the version information
func PrintVersion() {
	fmt.Println(String())
	if GitCommit != "" {
		fmt.Printf("Git commit: %s\n", ShortCommit())
	}
	if BuildTime != "" {
		fmt.Printf("Build time: %s\n", BuildTime)
	}
	fmt.Printf("Go version: %s\n", goVersion())
	fmt.Printf("Built for: %s\n", platform())
}

// String returns "<app> version <version>".
func String() string {
	return fmt.Sprintf("%s version %s", App, Get())
}

// ShortCommit returns the first seven characters of GitCommit.
func ShortCommit() string {
	if len(GitCommit) > 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// Get returns the injected version or "dev".
func Get() string {
	if Version != "" {
		return Version
	}
	return "dev"
}

func goVersion() string {
	if GoVersion != "" {
		return GoVersion
	}
	return runtime.Version()
}

func platform() string {
	if BuildOS != "" && BuildArch != "" {
		return BuildOS + "/" + BuildArch
	}
	return runtime.GOOS + "/" + runtime.GOARCH
}
