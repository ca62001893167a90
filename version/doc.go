// Package version reports build version information for seqkit binaries.
//
// Version, commit and build time are set at compile time via -ldflags and
// fall back to the module's embedded VCS metadata:
//
//	go build -ldflags "-X github.com/kbukum/seqkit/version.Version=1.0.0" ./cmd/seqdemo
package version
