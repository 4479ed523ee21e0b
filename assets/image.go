// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assets loads the files the sandbox draws with: images for
// textures, and change notifications for shader files.
package assets

import (
	"bufio"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/transform"
	"github.com/h2non/filetype"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"

	"cogentcore.org/glsandbox/base/errors"
)

// Formats are the supported image decoding formats.
type Formats int32

const (
	None Formats = iota
	PNG
	JPEG
	GIF
	TIFF
	BMP
	WebP
)

var formatNames = [...]string{"none", "png", "jpeg", "gif", "tiff", "bmp", "webp"}

func (f Formats) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Formats(?)"
	}
	return formatNames[f]
}

// ExtToFormat returns a Format based on a filename extension,
// which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	if len(ext) == 0 {
		return None, errors.New("ExtToFormat: ext is empty")
	}
	if ext[0] == '.' {
		ext = ext[1:]
	}
	switch strings.ToLower(ext) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "tif", "tiff":
		return TIFF, nil
	case "bmp":
		return BMP, nil
	case "webp":
		return WebP, nil
	}
	return None, fmt.Errorf("ExtToFormat: extension %q not recognized", ext)
}

// sniffLen is how much of a file filetype needs to match any image
// signature it knows.
const sniffLen = 262

// Sniff returns the format of the encoded image whose first bytes are
// head, or None if filetype does not recognize it as an image.
func Sniff(head []byte) Formats {
	if !filetype.IsImage(head) {
		return None
	}
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return None
	}
	f, err := ExtToFormat(kind.Extension)
	if err != nil {
		return None
	}
	return f
}

// Read decodes an image from r. The format is taken from the content
// when it can be recognized, otherwise from the extension of name.
func Read(r io.Reader, name string) (image.Image, Formats, error) {
	br := bufio.NewReaderSize(r, 4096)
	head, _ := br.Peek(sniffLen)
	f := Sniff(head)
	if f == None {
		var err error
		f, err = ExtToFormat(filepath.Ext(name))
		if err != nil {
			return nil, None, fmt.Errorf("assets: unknown image format for %q", name)
		}
	}
	var im image.Image
	var err error
	switch f {
	case PNG:
		im, err = png.Decode(br)
	case JPEG:
		im, err = jpeg.Decode(br)
	case GIF:
		im, err = gif.Decode(br)
	case TIFF:
		im, err = tiff.Decode(br)
	case BMP:
		im, err = bmp.Decode(br)
	case WebP:
		im, err = webp.Decode(br)
	}
	if err != nil {
		return nil, f, fmt.Errorf("assets: decoding %s image %q: %w", f, name, err)
	}
	return im, f, nil
}

// OpenImage opens the image file at path and returns it as RGBA,
// flipped vertically so that row 0 is the bottom row of the image,
// which is the row order GL texture uploads expect.
func OpenImage(path string) (*image.RGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := Read(file, path)
	if err != nil {
		return nil, err
	}
	return FlipV(im), nil
}

// FlipV returns an RGBA copy of im flipped vertically, with its
// bounds starting at 0,0.
func FlipV(im image.Image) *image.RGBA {
	return transform.FlipV(im)
}
