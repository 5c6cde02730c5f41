// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package media stores uploaded files under the uploads directory. Files get
// random uuid names; entities keep the returned relative path.
package media

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/olegiv/aisite/internal/util"
)

// Kind selects the directory and the accepted content of an upload.
type Kind string

// Upload kinds.
const (
	KindGallery    Kind = "gallery"
	KindTeam       Kind = "team"
	KindBlog       Kind = "blog"
	KindSolution   Kind = "solutions"
	KindEvent      Kind = "events"
	KindArticle    Kind = "articles"
	KindArticlePDF Kind = "article_pdf"
	KindAvatar     Kind = "avatars"
	KindBranding   Kind = "branding"
	KindAttachment Kind = "attachment"
)

var kindDirs = map[Kind]string{
	KindGallery:    "gallery",
	KindTeam:       "team",
	KindBlog:       "blog",
	KindSolution:   "solutions",
	KindEvent:      "events",
	KindArticle:    "articles/images",
	KindArticlePDF: "articles/pdfs",
	KindAvatar:     "testimonials",
	KindBranding:   "settings",
	KindAttachment: "contact_attachments",
}

// Thumbnail size for gallery images.
const (
	ThumbWidth  = 400
	ThumbHeight = 300
)

// Attachment extensions accepted on the contact form.
var attachmentExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// Upload errors. Callers turn these into field validation messages.
var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrUnknownKind     = errors.New("unknown upload kind")
	ErrEmpty           = errors.New("empty file")
)

// ParseKind validates a kind taken from a URL.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindDirs[k]; !ok {
		return "", ErrUnknownKind
	}
	return k, nil
}

// IsImage reports whether uploads of kind must be images.
func (k Kind) IsImage() bool {
	return k != KindArticlePDF && k != KindAttachment
}

// Upload is a file received from a client.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Saved describes a stored upload.
type Saved struct {
	Path      string `json:"path"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Size      int64  `json:"size"`
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// Store writes uploads below root.
type Store struct {
	root    string
	maxSize int64
}

// NewStore returns a Store rooted at dir that rejects files above maxSize bytes.
func NewStore(dir string, maxSize int64) *Store {
	return &Store{root: dir, maxSize: maxSize}
}

// Root returns the uploads directory.
func (s *Store) Root() string { return s.root }

// MaxSize returns the per-file limit in bytes.
func (s *Store) MaxSize() int64 { return s.maxSize }

// Save validates and writes the content of r as an upload of kind.
// filename is only used for its extension.
func (s *Store) Save(kind Kind, filename string, r io.Reader) (*Saved, error) {
	dir, ok := kindDirs[kind]
	if !ok {
		return nil, ErrUnknownKind
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > s.maxSize {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	name := uuid.NewString()
	switch {
	case kind.IsImage():
		return s.saveImage(kind, dir, name, data)
	case kind == KindArticlePDF:
		if sniff(data) != "application/pdf" {
			return nil, ErrUnsupportedType
		}
		return s.saveRaw(dir, name+".pdf", data, "application/pdf")
	default:
		safe, err := util.SanitizeFilename(filename)
		if err != nil {
			return nil, ErrUnsupportedType
		}
		ext := util.FileExt(safe)
		if !attachmentExts[ext] {
			return nil, ErrUnsupportedType
		}
		return s.saveRaw(dir, name+ext, data, sniff(data))
	}
}

func (s *Store) saveImage(kind Kind, dir, name string, data []byte) (*Saved, error) {
	img, format, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	encoded, ext, err := encodeImage(img, format, 90)
	if err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	saved, err := s.saveRaw(dir, name+ext, encoded, formatToMimeType(format))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	saved.Width, saved.Height = b.Dx(), b.Dy()

	if kind == KindGallery {
		thumb, thumbExt, err := encodeImage(thumbnail(img), format, 85)
		if err != nil {
			return nil, fmt.Errorf("encoding thumbnail: %w", err)
		}
		rel := filepath.ToSlash(filepath.Join(dir, "thumbnails", name+thumbExt))
		if err := s.write(rel, thumb); err != nil {
			return nil, err
		}
		saved.Thumbnail = rel
	}
	return saved, nil
}

func (s *Store) saveRaw(dir, name string, data []byte, mime string) (*Saved, error) {
	rel := filepath.ToSlash(filepath.Join(dir, name))
	if err := s.write(rel, data); err != nil {
		return nil, err
	}
	return &Saved{Path: rel, Size: int64(len(data)), MimeType: mime}, nil
}

func (s *Store) write(rel string, data []byte) error {
	full, err := util.SafeJoinPath(s.root, filepath.FromSlash(rel))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("creating upload directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return fmt.Errorf("writing upload: %w", err)
	}
	return nil
}

// Open opens a stored upload by its relative path.
func (s *Store) Open(rel string) (*os.File, error) {
	if rel == "" {
		return nil, os.ErrNotExist
	}
	full, err := util.SafeJoinPath(s.root, filepath.FromSlash(rel))
	if err != nil {
		return nil, err
	}
	return os.Open(full)
}

// Remove deletes a stored upload. Missing files are not an error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	full, err := util.SafeJoinPath(s.root, filepath.FromSlash(rel))
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sniff(data []byte) string {
	ct := http.DetectContentType(data)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return ct
}
