package prefabs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/mazes/canvas"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestLoadEmbeddedMazeSpec(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadMazeSpec()
	require.NoError(t, err)
	require.Equal(t, "Mazes", spec.Title)
	require.Equal(t, 10, spec.Width)
	require.Equal(t, 10, spec.Height)
	require.Equal(t, 50, spec.Scale)
	require.Equal(t, 10, spec.CellMargin)
	require.Equal(t, 5, spec.EdgeThickness)
	require.Equal(t, canvas.Color{R: 50, G: 255, B: 50}, spec.Colors.Start.Color)
	require.Equal(t, canvas.Color{R: 255, G: 50, B: 50}, spec.Colors.End.Color)
	require.Equal(t, canvas.Color{R: 50, G: 50, B: 255}, spec.Colors.Path.Color)
	require.Equal(t, canvas.Color{B: 255}, spec.Colors.VerticalEdge.Color)
	require.Equal(t, canvas.Color{R: 255}, spec.Colors.HorizontalEdge.Color)
}

func TestLoadEmbeddedTilesSpec(t *testing.T) {
	useDir(t, t.TempDir())

	spec, err := LoadTilesSpec()
	require.NoError(t, err)
	require.Equal(t, 640, spec.Width)
	require.Equal(t, 480, spec.Height)
	require.LessOrEqual(t, spec.MinTile, spec.MaxTile)
	require.NotEqual(t, spec.Colors.Light, spec.Colors.Dark)
}

func TestDiskOverride(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)

	override := []byte(`title: Override
width: 4
height: 3
scale: 20
cell_margin: 2
edge_thickness: 1
colors:
  start: "#010203"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, MazeFile), override, 0o644))

	spec, err := LoadMazeSpec()
	require.NoError(t, err)
	require.Equal(t, "Override", spec.Title)
	require.Equal(t, 4, spec.Width)
	require.Equal(t, canvas.Color{R: 1, G: 2, B: 3}, spec.Colors.Start.Color)

	_, ok := ModTime("prefabs/" + MazeFile)
	require.True(t, ok)
	_, ok = ModTime(TilesFile)
	require.False(t, ok)
}

func TestMazeSpecValidate(t *testing.T) {
	valid := MazeSpec{Width: 10, Height: 10, Scale: 50, CellMargin: 10, EdgeThickness: 5}
	cases := []struct {
		name   string
		mutate func(s *MazeSpec)
		ok     bool
	}{
		{"valid", func(s *MazeSpec) {}, true},
		{"zero_width", func(s *MazeSpec) { s.Width = 0 }, false},
		{"zero_height", func(s *MazeSpec) { s.Height = 0 }, false},
		{"zero_scale", func(s *MazeSpec) { s.Scale = 0 }, false},
		{"margin_too_big", func(s *MazeSpec) { s.CellMargin = 25 }, false},
		{"negative_edge", func(s *MazeSpec) { s.EdgeThickness = -1 }, false},
		{"edge_too_thick", func(s *MazeSpec) { s.EdgeThickness = 51 }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := valid
			c.mutate(&s)
			err := s.Validate()
			if c.ok {
				require.NoError(t, err)
				return
			}
			require.True(t, errors.Is(err, ErrInvalidSpec), "got %v", err)
		})
	}
}

func TestTilesSpecValidate(t *testing.T) {
	s := TilesSpec{Width: 10, Height: 10, MinTile: 4, MaxTile: 2}
	require.ErrorIs(t, s.Validate(), ErrInvalidSpec)
	s.MaxTile = 4
	require.NoError(t, s.Validate())
	s.Height = 0
	require.ErrorIs(t, s.Validate(), ErrInvalidSpec)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    canvas.Color
		wantErr bool
	}{
		{"rgb", `"#0a0b0c"`, canvas.Color{R: 10, G: 11, B: 12}, false},
		{"no_hash", `"ffffff"`, canvas.White, false},
		{"opaque_alpha", `"#102030ff"`, canvas.Color{R: 16, G: 32, B: 48}, false},
		{"translucent", `"#10203080"`, canvas.Color{}, true},
		{"short", `"#fff"`, canvas.Color{}, true},
		{"not_hex", `"#gg0000"`, canvas.Color{}, true},
		{"not_scalar", `[1, 2, 3]`, canvas.Color{}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out struct {
				C YAMLColor `yaml:"c"`
			}
			err := yaml.Unmarshal([]byte("c: "+c.in), &out)
			if c.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.want, out.C.Color)
		})
	}
}

func TestWatcherReportsChangedSpec(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, MazeFile), []byte("width: 3\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		names, err := w.Poll()
		require.NoError(t, err)
		got = append(got, names...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	require.Equal(t, MazeFile, got[0])
	require.NotContains(t, got, "notes.txt")
}

func TestWatcherWaitsForQuietBurst(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	path := filepath.Join(dir, MazeFile)
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	names, err := w.Poll()
	require.NoError(t, err)
	require.Empty(t, names, "a truncated file is not reported before the burst settles")

	require.NoError(t, os.WriteFile(path, []byte("width: 4\n"), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		names, err := w.Poll()
		require.NoError(t, err)
		got = append(got, names...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	require.Equal(t, []string{MazeFile}, got)

	data, err := Load(MazeFile)
	require.NoError(t, err)
	require.Equal(t, "width: 4\n", string(data))
}

func TestWatcherSkipsUnchangedModTime(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, MazeFile), []byte("width: 3\n"), 0o644))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	w.Events <- MazeFile
	names, err := w.Poll()
	require.NoError(t, err)
	require.Equal(t, []string{MazeFile}, names)

	w.Events <- MazeFile
	names, err = w.Poll()
	require.NoError(t, err)
	require.Empty(t, names)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(filepath.Join(dir, MazeFile), later, later))
	w.Events <- MazeFile
	names, err = w.Poll()
	require.NoError(t, err)
	require.Equal(t, []string{MazeFile}, names)

	w.Events <- TilesFile
	names, err = w.Poll()
	require.NoError(t, err)
	require.Equal(t, []string{TilesFile}, names, "missing overrides are always reported")
}

func TestWatcherPollReturnsErrors(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	w.Errors <- errors.New("queue overflow")
	names, err := w.Poll()
	require.Empty(t, names)
	require.ErrorContains(t, err, "queue overflow")

	_, err = w.Poll()
	require.NoError(t, err)
}

func TestWatcherCloseIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	names, err := w.Poll()
	require.NoError(t, err)
	require.Empty(t, names)

	var nilWatcher *Watcher
	names, err = nilWatcher.Poll()
	require.NoError(t, err)
	require.Nil(t, names)
}
