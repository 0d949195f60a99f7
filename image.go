package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImagePath identifies a viewable image: a plain file on disk, or an entry
// inside a zip/rar/7z archive addressed as archive:entry.
type ImagePath struct {
	Path        string // Local file path or archive:entry form
	ArchivePath string // Empty for regular files
	EntryPath   string // Empty for regular files
}

// Load failure taxonomy. Every condition is recoverable at the UI boundary:
// the viewer keeps its last good state and reports the error.
var (
	ErrInvalidPath       = errors.New("file missing or inaccessible")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrDecodeFailure     = errors.New("image decode failed")
)

func isSupportedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

func isArchiveExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func classifyDecodeError(path string, err error) error {
	if !isSupportedExt(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return fmt.Errorf("%w: %s: %v", ErrDecodeFailure, path, err)
}

// ImageLoader loads and caches decoded images. Decoding happens on the
// caller's goroutine; Preload warms the cache from a background worker.
type ImageLoader interface {
	Load(path ImagePath) (*ebiten.Image, error)
	Preload(paths []ImagePath)
	Close()
}

type cachedImageLoader struct {
	cache    *lru.Cache[string, *ebiten.Image]
	requests chan []ImagePath
	done     chan struct{}
}

// NewImageLoader creates a loader with an LRU cache of cacheSize decoded
// images. Evicted images release their GPU memory. When preload is enabled
// a single worker goroutine decodes queued neighbors into the cache.
func NewImageLoader(cacheSize int, preload bool) ImageLoader {
	cache, err := lru.NewWithEvict[string, *ebiten.Image](cacheSize, func(_ string, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	})
	if err != nil {
		log.Printf("Error: Failed to create LRU cache: %v", err)
		cache, _ = lru.NewWithEvict[string, *ebiten.Image](16, func(_ string, img *ebiten.Image) {
			if img != nil {
				img.Deallocate()
			}
		})
	}

	l := &cachedImageLoader{cache: cache}
	if preload {
		l.requests = make(chan []ImagePath, 4)
		l.done = make(chan struct{})
		go l.preloadWorker()
	}
	return l
}

func (l *cachedImageLoader) Load(path ImagePath) (*ebiten.Image, error) {
	if img, ok := l.cache.Get(path.Path); ok {
		debugLog("Cache HIT: %s (cache: %d items)", path.Path, l.cache.Len())
		return img, nil
	}

	img, err := loadImage(path)
	if err != nil {
		return nil, err
	}
	l.cache.Add(path.Path, img)
	debugLog("Cache MISS: %s, loaded and cached (cache: %d items)", path.Path, l.cache.Len())
	return img, nil
}

// Preload queues paths for background decoding, replacing any requests that
// are still pending from earlier navigation.
func (l *cachedImageLoader) Preload(paths []ImagePath) {
	if l.requests == nil || len(paths) == 0 {
		return
	}

drain:
	for {
		select {
		case <-l.requests:
			// discard stale requests
		default:
			break drain
		}
	}

	select {
	case l.requests <- paths:
	default:
	}
}

func (l *cachedImageLoader) preloadWorker() {
	for {
		select {
		case <-l.done:
			return
		case paths := <-l.requests:
			for _, p := range paths {
				if _, ok := l.cache.Get(p.Path); ok {
					continue
				}
				img, err := loadImage(p)
				if err != nil {
					debugLog("Preload failed for %s: %v", p.Path, err)
					continue
				}
				l.cache.Add(p.Path, img)
				debugLog("Preloaded %s (cache: %d items)", p.Path, l.cache.Len())
			}
		}
	}
}

func (l *cachedImageLoader) Close() {
	if l.done != nil {
		close(l.done)
	}
}

// Image loading functions

func loadImageFromBytes(data []byte, path string) (*ebiten.Image, error) {
	reader := bytes.NewReader(data)
	img, _, err := image.Decode(reader)
	if err != nil {
		return nil, classifyDecodeError(path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func loadImageFromZip(archivePath, entryPath string) (*ebiten.Image, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, err
			}

			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("%w: entry %s not found in %s", ErrInvalidPath, entryPath, archivePath)
}

func loadImageFromRar(archivePath, entryPath string) (*ebiten.Image, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, archivePath, err)
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if header.Name == entryPath {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("%w: entry %s not found in %s", ErrInvalidPath, entryPath, archivePath)
}

func loadImageFrom7z(archivePath, entryPath string) (*ebiten.Image, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()

			data, err := io.ReadAll(rc)
			if err != nil {
				return nil, err
			}

			return loadImageFromBytes(data, entryPath)
		}
	}
	return nil, fmt.Errorf("%w: entry %s not found in %s", ErrInvalidPath, entryPath, archivePath)
}

func loadImage(imagePath ImagePath) (*ebiten.Image, error) {
	if imagePath.ArchivePath == "" {
		f, err := os.Open(imagePath.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, imagePath.Path, err)
		}
		defer f.Close()

		img, _, err := image.Decode(f)
		if err != nil {
			return nil, classifyDecodeError(imagePath.Path, err)
		}
		return ebiten.NewImageFromImage(img), nil
	}

	ext := strings.ToLower(filepath.Ext(imagePath.ArchivePath))
	switch ext {
	case ".zip":
		return loadImageFromZip(imagePath.ArchivePath, imagePath.EntryPath)
	case ".rar":
		return loadImageFromRar(imagePath.ArchivePath, imagePath.EntryPath)
	case ".7z":
		return loadImageFrom7z(imagePath.ArchivePath, imagePath.EntryPath)
	default:
		return nil, fmt.Errorf("%w: unsupported archive format %s", ErrUnsupportedFormat, ext)
	}
}

// Archive entry collection

func extractImagesFromZip(archivePath string) ([]string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

func extractImagesFromRar(archivePath string) ([]string, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var names []string
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		if !header.IsDir && isSupportedExt(header.Name) {
			names = append(names, header.Name)
		}
	}
	return names, nil
}

func extractImagesFrom7z(archivePath string) ([]string, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names, nil
}

// processArchive lists the viewable entries of an archive as ImagePaths,
// ordered by the given sort strategy.
func processArchive(archivePath string, sortMethod int) ([]ImagePath, error) {
	var (
		names []string
		err   error
	)

	ext := strings.ToLower(filepath.Ext(archivePath))
	switch ext {
	case ".zip":
		names, err = extractImagesFromZip(archivePath)
	case ".rar":
		names, err = extractImagesFromRar(archivePath)
	case ".7z":
		names, err = extractImagesFrom7z(archivePath)
	default:
		return nil, fmt.Errorf("%w: unsupported archive format %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPath, archivePath, err)
	}

	names = GetSortStrategy(sortMethod).Sort(names)

	images := make([]ImagePath, 0, len(names))
	for _, name := range names {
		images = append(images, ImagePath{
			Path:        archivePath + ":" + name,
			ArchivePath: archivePath,
			EntryPath:   name,
		})
	}
	return images, nil
}
