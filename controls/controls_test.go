package controls

import (
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/robhato/CS418-MP1/anim"
)

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"controls.toml", TOML, false},
		{"dir/Controls.TOML", TOML, false},
		{"controls.yaml", YAML, false},
		{"controls.yml", YAML, false},
		{"controls.json", 0, true},
		{"controls", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatOf(tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrFormat) {
					t.Errorf("FormatOf(%q) error = %v, want ErrFormat", tt.path, err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("FormatOf(%q) = %v, %v", tt.path, got, err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		in      string
		want    anim.Controls
		wantErr bool
	}{
		{
			name:   "toml full",
			format: TOML,
			in:     "speed = 90\nscale = 0.5\ndegrees = 60\nanimationA = false\n",
			want:   anim.Controls{Speed: 90, Scale: 0.5, Degrees: 60},
		},
		{
			name:   "toml partial keeps defaults",
			format: TOML,
			in:     "speed = 10\n",
			want:   anim.Controls{Speed: 10, Scale: 1, Degrees: 45, AnimationA: true},
		},
		{
			name:   "toml empty",
			format: TOML,
			in:     "",
			want:   Defaults,
		},
		{
			name:    "toml unknown key",
			format:  TOML,
			in:      "sped = 10\n",
			wantErr: true,
		},
		{
			name:   "yaml full",
			format: YAML,
			in:     "speed: 30\nscale: 2\ndegrees: -15\nanimationA: false\n",
			want:   anim.Controls{Speed: 30, Scale: 2, Degrees: -15},
		},
		{
			name:   "yaml empty",
			format: YAML,
			in:     "",
			want:   Defaults,
		},
		{
			name:    "yaml unknown key",
			format:  YAML,
			in:      "zoom: 3\n",
			wantErr: true,
		},
		{
			name:    "yaml wrong type",
			format:  YAML,
			in:      "speed: fast\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.in), tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Decode() = %+v, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeNaN(t *testing.T) {
	c, err := Decode(strings.NewReader("scale = nan\n"), TOML)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(float64(c.Scale)) {
		t.Errorf("scale = %v, want NaN", c.Scale)
	}
}

func TestStore(t *testing.T) {
	s := NewStore(Defaults)
	if s.Controls() != Defaults {
		t.Fatalf("Controls() = %+v", s.Controls())
	}
	if s.ToggleAnimation() {
		t.Errorf("ToggleAnimation() = true, want false")
	}
	if s.Controls().Variant() != anim.Custom {
		t.Errorf("variant after toggle = %v", s.Controls().Variant())
	}
	s.Set(anim.Controls{Speed: 1})
	if s.Controls().Speed != 1 {
		t.Errorf("Set did not replace the controls")
	}
}

func TestStoreLoadKeepsToggle(t *testing.T) {
	s := NewStore(Defaults)
	s.ToggleAnimation()

	fc, err := decode(strings.NewReader("speed = 3\n"), TOML)
	if err != nil {
		t.Fatal(err)
	}
	if c := s.load(&fc); c.Speed != 3 || c.AnimationA {
		t.Errorf("load without animationA = %+v, want speed 3 and the toggled value", c)
	}

	fc, err = decode(strings.NewReader("speed = 3\nanimationA = true\n"), TOML)
	if err != nil {
		t.Fatal(err)
	}
	if c := s.load(&fc); !c.AnimationA {
		t.Errorf("load with animationA = true kept %+v", c)
	}

	// keys left out fall back to Defaults, not the previous file
	fc, err = decode(strings.NewReader("degrees: 10\n"), YAML)
	if err != nil {
		t.Fatal(err)
	}
	if c := s.load(&fc); c.Speed != Defaults.Speed || c.Degrees != 10 {
		t.Errorf("load = %+v", c)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.yaml")
	if err := os.WriteFile(path, []byte("speed: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.Speed != 12 || c.Scale != Defaults.Scale {
		t.Errorf("ReadFile() = %+v", c)
	}

	if _, err := ReadFile(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile(missing) error = %v", err)
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	if err := os.WriteFile(path, []byte("speed = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Defaults)
	w, err := Watch(path, store, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if store.Controls().Speed != 5 {
		t.Fatalf("initial speed = %v, want 5", store.Controls().Speed)
	}

	replaceFile(t, path, "speed = 7\nanimationA = false\n")
	waitFor(t, func() bool {
		c := store.Controls()
		return c.Speed == 7 && !c.AnimationA
	})

	// a broken file keeps the last good values
	replaceFile(t, path, "speed = \n")
	time.Sleep(100 * time.Millisecond)
	if c := store.Controls(); c.Speed != 7 {
		t.Errorf("speed after bad write = %v, want 7", c.Speed)
	}
}

func TestWatchKeepsToggle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	if err := os.WriteFile(path, []byte("speed = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Defaults)
	w, err := Watch(path, store, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if store.ToggleAnimation() {
		t.Fatal("ToggleAnimation() = true, want false")
	}
	replaceFile(t, path, "speed = 6\n")
	waitFor(t, func() bool { return store.Controls().Speed == 6 })
	if store.Controls().AnimationA {
		t.Errorf("reload of a file without animationA undid the toggle")
	}

	replaceFile(t, path, "speed = 6\nanimationA = true\n")
	waitFor(t, func() bool { return store.Controls().AnimationA })
}

func TestWatcherClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.toml")
	if err := os.WriteFile(path, []byte("speed = 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(Defaults)
	w, err := Watch(path, store, log.New(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	// no reloads once closed
	replaceFile(t, path, "speed = 9\n")
	time.Sleep(100 * time.Millisecond)
	if c := store.Controls(); c.Speed != 5 {
		t.Errorf("speed after Close = %v, want 5", c.Speed)
	}
}

func TestWatchRejectsFormat(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "controls.ini"), NewStore(Defaults), nil)
	if !errors.Is(err, ErrFormat) {
		t.Errorf("Watch error = %v, want ErrFormat", err)
	}
}

// replaceFile swaps in new content with a rename so the watcher never sees
// a truncated file.
func replaceFile(t *testing.T, path, content string) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
