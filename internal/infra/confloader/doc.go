// Package confloader provides configuration loading for stagepass.
//
// It uses Koanf for flexible configuration loading from multiple
// sources with priority: Env > File > Default. A fsnotify-based
// watcher supports applying configuration changes at runtime.
package confloader
