// internal/version/version.go
package version

// Version is stamped at build time:
//
//	go build -ldflags "-X github.com/LanceryH/Space-propulsion/internal/version.Version=v1.2.3" ./cmd/propulsion
var Version = "dev"
