package game

import (
	"errors"
	"fmt"
	_ "image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Asset file names, resolved against the asset directory.
const (
	BackgroundFile = "bg.png"
	SurvivorFile   = "survivor.png"
	ZombieFile     = "zombie.png"
	LinkFile       = "link.png"
	FontFile       = "font.ttf"
	MusicFile      = "music.mp3"
)

// ErrMissingAsset is wrapped by every asset lookup that finds no file.
var ErrMissingAsset = errors.New("missing asset")

// Assets holds the loaded images and the message font.
type Assets struct {
	Background *ebiten.Image
	Survivor   *ebiten.Image
	Zombie     *ebiten.Image
	Link       *ebiten.Image
	Face       text.Face
}

// ResolveAssetDir returns the directory holding the executable when the
// background image sits next to it, otherwise the working directory
// (covers `go run`, whose binary lives in a temp dir).
func ResolveAssetDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if fileExists(filepath.Join(dir, BackgroundFile)) {
			return dir
		}
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// requireAsset returns the full path of a mandatory asset.
func requireAsset(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if !fileExists(path) {
		return "", fmt.Errorf("%w: %s", ErrMissingAsset, path)
	}
	return path, nil
}

// LoadAssets loads the background and sprites, which are mandatory, and the
// font, which falls back to a built-in face with a warning.
func LoadAssets(dir string) (*Assets, error) {
	names := []string{BackgroundFile, SurvivorFile, ZombieFile, LinkFile}
	paths := make([]string, len(names))
	for i, n := range names {
		p, err := requireAsset(dir, n)
		if err != nil {
			return nil, err
		}
		paths[i] = p
	}

	imgs := make([]*ebiten.Image, len(paths))
	for i, p := range paths {
		img, _, err := ebitenutil.NewImageFromFile(p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		imgs[i] = img
	}

	return &Assets{
		Background: imgs[0],
		Survivor:   imgs[1],
		Zombie:     imgs[2],
		Link:       imgs[3],
		Face:       loadFace(filepath.Join(dir, FontFile), fontSize),
	}, nil
}

// loadFace parses a TrueType/OpenType font, falling back to basicfont when
// the file is absent or unreadable.
func loadFace(path string, size float64) text.Face {
	face, err := parseFace(path, size)
	if err != nil {
		log.Printf("warning: %v, using built-in font", err)
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return text.NewGoXFace(face)
}

func parseFace(path string, size float64) (font.Face, error) {
	if !fileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %s: %w", path, err)
	}
	return face, nil
}
