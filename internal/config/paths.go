// ABOUTME: Standard filesystem paths for tourguide settings and tour scripts
// ABOUTME: Resolves ~/.tourguide/ for global and .tourguide/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".tourguide"
	projectDirName = ".tourguide"
	settingsName   = "settings.json"
)

// GlobalDir returns the user-global config directory (~/.tourguide/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return GlobalDirIn(home)
}

// GlobalDirIn returns the global config directory under home.
func GlobalDirIn(home string) string {
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory.
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalSettingsFile returns the path to the global settings file.
func GlobalSettingsFile() string {
	return filepath.Join(GlobalDir(), settingsName)
}

// ProjectSettingsFile returns the path to the project settings file.
func ProjectSettingsFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), settingsName)
}

// ThemesDir returns the directory searched for theme files by name.
func ThemesDir() string {
	return filepath.Join(GlobalDir(), "themes")
}

// ToursDirs returns the directories searched for tour scripts, project
// first.
func ToursDirs(projectRoot string) []string {
	return []string{
		filepath.Join(ProjectDir(projectRoot), "tours"),
		filepath.Join(GlobalDir(), "tours"),
	}
}
