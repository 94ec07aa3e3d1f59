// Package config defines the stagepass-server configuration.
//
// Configuration is loaded by confloader with priority Env > File >
// Default. The LiveKit credentials have no defaults; the process
// refuses to start without them.
package config
