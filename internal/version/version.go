// Package version holds build information set through -ldflags.
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X github.com/listenupapp/luckysign/internal/version.Version=1.2.0"
var Version = "0.1.0"

// APIVersion is the HTTP API generation, also used in the response envelope.
const APIVersion = "v1"
