// Package controls supplies the speed, scale, degrees and animation toggle
// values read by the demos every frame.  Values come from a TOML or YAML
// file, optionally watched for changes, and are never range checked.
package controls

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/robhato/CS418-MP1/anim"
	"golang.org/x/mobile/asset"
	"gopkg.in/yaml.v3"
)

// ErrFormat is returned for control files with an unrecognized extension.
var ErrFormat = errors.New("unknown controls format")

// Defaults are used for any value a controls file leaves out.
var Defaults = anim.Controls{
	Speed:      45,
	Scale:      1,
	Degrees:    45,
	AnimationA: true,
}

// Format is the encoding of a controls file.
type Format int

const (
	TOML Format = iota
	YAML
)

// FormatOf picks the format of path from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrFormat, path)
}

// fileControls mirrors anim.Controls with every key optional so a decode can
// tell a missing key from a zero value.
type fileControls struct {
	Speed      *float32 `toml:"speed" yaml:"speed"`
	Scale      *float32 `toml:"scale" yaml:"scale"`
	Degrees    *float32 `toml:"degrees" yaml:"degrees"`
	AnimationA *bool    `toml:"animationA" yaml:"animationA"`
}

// apply returns c with the keys present in fc overwritten.
func (fc *fileControls) apply(c anim.Controls) anim.Controls {
	if fc.Speed != nil {
		c.Speed = *fc.Speed
	}
	if fc.Scale != nil {
		c.Scale = *fc.Scale
	}
	if fc.Degrees != nil {
		c.Degrees = *fc.Degrees
	}
	if fc.AnimationA != nil {
		c.AnimationA = *fc.AnimationA
	}
	return c
}

func decode(r io.Reader, f Format) (fileControls, error) {
	var fc fileControls
	switch f {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&fc); err != nil {
			return fileControls{}, err
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && err != io.EOF {
			return fileControls{}, err
		}
	default:
		return fileControls{}, ErrFormat
	}
	return fc, nil
}

// Decode reads controls in format f from r.  Keys missing from r keep their
// Defaults value and unknown keys are an error.
func Decode(r io.Reader, f Format) (anim.Controls, error) {
	fc, err := decode(r, f)
	if err != nil {
		return Defaults, err
	}
	return fc.apply(Defaults), nil
}

func readFile(path string) (fileControls, error) {
	f, err := FormatOf(path)
	if err != nil {
		return fileControls{}, err
	}
	file, err := os.Open(path)
	if err != nil {
		return fileControls{}, err
	}
	defer file.Close()
	fc, err := decode(file, f)
	if err != nil {
		return fileControls{}, fmt.Errorf("%s: %v", path, err)
	}
	return fc, nil
}

// ReadFile decodes the controls file at path.
func ReadFile(path string) (anim.Controls, error) {
	fc, err := readFile(path)
	if err != nil {
		return Defaults, err
	}
	return fc.apply(Defaults), nil
}

// LoadAsset decodes a controls file bundled with the app.
func LoadAsset(path string) (anim.Controls, error) {
	f, err := FormatOf(path)
	if err != nil {
		return Defaults, err
	}
	file, err := asset.Open(path)
	if err != nil {
		return Defaults, err
	}
	defer file.Close()
	c, err := Decode(file, f)
	if err != nil {
		return Defaults, fmt.Errorf("%s: %v", path, err)
	}
	return c, nil
}

// Store holds the current controls.  It is written by a Watcher or the
// event loop and read once per frame.
type Store struct {
	mu sync.RWMutex
	c  anim.Controls
}

// NewStore returns a Store holding c.
func NewStore(c anim.Controls) *Store {
	return &Store{c: c}
}

// Controls returns a snapshot of the current values.
func (s *Store) Controls() anim.Controls {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.c
}

// Set replaces the current values.
func (s *Store) Set(c anim.Controls) {
	s.mu.Lock()
	s.c = c
	s.mu.Unlock()
}

// load replaces the values with fc applied to Defaults.  AnimationA is only
// taken from fc when the file sets it, so a tap survives reloads of a file
// that leaves the key out.
func (s *Store) load(fc *fileControls) anim.Controls {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fc.apply(Defaults)
	if fc.AnimationA == nil {
		next.AnimationA = s.c.AnimationA
	}
	s.c = next
	return next
}

// ToggleAnimation flips AnimationA and returns the new value.
func (s *Store) ToggleAnimation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.AnimationA = !s.c.AnimationA
	return s.c.AnimationA
}
