package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAssets_MissingBackgroundIsFatal(t *testing.T) {
	_, err := LoadAssets(t.TempDir())
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestLoadAssets_MissingSpriteIsFatal(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, BackgroundFile), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadAssets(dir)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset for sprites, got %v", err)
	}
}

func TestParseFace_MissingFont(t *testing.T) {
	_, err := parseFace(filepath.Join(t.TempDir(), FontFile), fontSize)
	if !errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected ErrMissingAsset, got %v", err)
	}
}

func TestParseFace_GarbageFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), FontFile)
	if err := os.WriteFile(path, []byte("not a font"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := parseFace(path, fontSize)
	if err == nil || errors.Is(err, ErrMissingAsset) {
		t.Fatalf("expected a parse error, got %v", err)
	}
}

func TestStartMusic_MissingFileIsSilent(t *testing.T) {
	m := StartMusic(filepath.Join(t.TempDir(), MusicFile), MusicVolume)
	if m != nil {
		t.Fatal("missing music should yield a nil player")
	}
	if err := m.Close(); err != nil {
		t.Fatalf("closing nil music should be a no-op, got %v", err)
	}
}

func TestClampVolume(t *testing.T) {
	if clampVolume(-1) != 0 || clampVolume(2) != 1 || clampVolume(0.1) != 0.1 {
		t.Fatal("volume should clamp to [0,1]")
	}
}

func TestResolveAssetDir_FallsBackToWorkingDir(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	// The test binary's directory holds no background image.
	if got := ResolveAssetDir(); got != wd {
		t.Fatalf("expected working dir %s, got %s", wd, got)
	}
}
