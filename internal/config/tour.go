// ABOUTME: Tour scripts: an ordered list of walkthrough steps loaded from YAML or markdown
// ABOUTME: Step fields use the same names as the library's parsers (gravity flags, techniques, styles)

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mauromedda/tourguide-go/pkg/tourguide"
	"github.com/mauromedda/tourguide-go/pkg/tourguide/geom"
	"gopkg.in/yaml.v3"
)

// Tour is a scripted walkthrough.
type Tour struct {
	Title string `yaml:"title"`
	// Intro is the markdown body of a .md tour script.
	Intro string `yaml:"-"`
	Steps []Step `yaml:"steps"`
}

// Step is one guide in a tour. Empty fields fall back to defaults.
type Step struct {
	Target      string `yaml:"target"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Markdown    bool   `yaml:"markdown"`

	Gravity        string `yaml:"gravity"`
	PointerGravity string `yaml:"pointer"`
	NoPointer      bool   `yaml:"no_pointer"`
	Technique      string `yaml:"technique"`
	Motion         string `yaml:"motion"`

	Style        string `yaml:"style"`
	Padding      int    `yaml:"padding"`
	DisableClick bool   `yaml:"disable_click"`
	Border       bool   `yaml:"border"`
	Width        int    `yaml:"width"`
	Finish       string `yaml:"finish"`
}

// LoadTour reads a tour script. Files ending in .md keep the tour in
// YAML frontmatter and use the body as the introduction; anything else is
// plain YAML.
func LoadTour(path string) (*Tour, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tour: %w", err)
	}
	t, err := ParseTour(string(data), strings.EqualFold(filepath.Ext(path), ".md"))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTour parses tour content; markdown selects the frontmatter form.
func ParseTour(content string, markdown bool) (*Tour, error) {
	var t Tour
	if markdown {
		fm, body, err := ParseFrontmatter[Tour](content)
		if err != nil {
			return nil, err
		}
		t = fm
		t.Intro = strings.TrimSpace(body)
	} else if err := yaml.Unmarshal([]byte(content), &t); err != nil {
		return nil, fmt.Errorf("parse tour YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// FindTour resolves name against the tour directories unless it is
// already a path to an existing file.
func FindTour(projectRoot, name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	for _, dir := range ToursDirs(projectRoot) {
		for _, ext := range []string{"", ".yaml", ".yml", ".md"} {
			p := filepath.Join(dir, name+ext)
			if _, err := os.Stat(p); err == nil {
				return p, nil
			}
		}
	}
	return "", fmt.Errorf("tour %q not found", name)
}

// Validate checks every step, reporting all problems at once.
func (t *Tour) Validate() error {
	if len(t.Steps) == 0 {
		return errors.New("tour has no steps")
	}
	var errs []error
	for i, s := range t.Steps {
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("step %d: %w", i+1, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that every named value parses.
func (s Step) Validate() error {
	if s.Target == "" {
		return tourguide.ErrNoTarget
	}
	if _, err := s.ToolTipGravity(); err != nil {
		return err
	}
	if _, err := s.PointerAt(); err != nil {
		return err
	}
	if _, err := s.TechniqueOr(tourguide.Click); err != nil {
		return err
	}
	motion, err := s.MotionOr(tourguide.AllowAll)
	if err != nil {
		return err
	}
	// Scripted steps have no click handler to fall back on.
	if s.DisableClick && motion == tourguide.ClickOnly {
		return tourguide.ErrMotionConflict
	}
	if _, err := s.HoleStyle(); err != nil {
		return err
	}
	if s.Padding < 0 || s.Width < 0 {
		return fmt.Errorf("padding and width must not be negative")
	}
	return nil
}

// ToolTipGravity parses Gravity; empty means centred below the target.
func (s Step) ToolTipGravity() (geom.Gravity, error) {
	if s.Gravity == "" {
		return geom.Center, nil
	}
	return geom.ParseGravity(s.Gravity)
}

// PointerAt parses PointerGravity; empty means centred on the target.
func (s Step) PointerAt() (geom.Gravity, error) {
	if s.PointerGravity == "" {
		return geom.Center, nil
	}
	return geom.ParseGravity(s.PointerGravity)
}

// TechniqueOr parses Technique, returning def when empty.
func (s Step) TechniqueOr(def tourguide.Technique) (tourguide.Technique, error) {
	if s.Technique == "" {
		return def, nil
	}
	return tourguide.ParseTechnique(s.Technique)
}

// MotionOr parses Motion, returning def when empty.
func (s Step) MotionOr(def tourguide.MotionType) (tourguide.MotionType, error) {
	if s.Motion == "" {
		return def, nil
	}
	return tourguide.ParseMotionType(s.Motion)
}

// HoleStyle parses Style; empty means a rectangle.
func (s Step) HoleStyle() (tourguide.Style, error) {
	if s.Style == "" {
		return tourguide.Rectangle, nil
	}
	return tourguide.ParseStyle(s.Style)
}
