// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The genicon command renders the Setu application icon and writes the
// three asset files the application build expects: a multi-resolution
// Windows icon, a 256x256 PNG, and a raw 32x32 RGBA buffer embedded by the
// system tray.
//
// Usage: genicon [-dir directory]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"

	ico "github.com/sergeymakinen/go-ico"
	"setu.dev/icon"
)

var dir = flag.String("dir", "assets", "directory the icon files are written to")

// sizes are the resolutions embedded in the icon container, largest first.
var sizes = []int{256, 128, 64, 48, 32, 16}

const (
	icoName = "icon.ico"
	pngName = "setu.png"
	rawName = "icon_32x32.rgba"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("genicon: ")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: genicon [-dir directory]")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(*dir, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run renders every icon size and writes the three asset files under dir,
// creating the directory if needed and printing one confirmation line per
// file to out.
func run(dir string, out io.Writer) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}

	imgs := make([]image.Image, len(sizes))
	for i, size := range sizes {
		imgs[i] = icon.Render(size)
	}

	icoPath := filepath.Join(dir, icoName)
	if err := writeFile(icoPath, func(w io.Writer) error {
		return ico.EncodeAll(w, imgs)
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s with sizes: %v\n", icoPath, sizes)

	pngPath := filepath.Join(dir, pngName)
	if err := writeFile(pngPath, func(w io.Writer) error {
		return png.Encode(w, imgs[0])
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s (256x256 PNG)\n", pngPath)

	// The tray buffer is rendered fresh rather than reused from imgs;
	// rendering is deterministic, so the bytes match either way.
	raw := icon.Render(32)
	rawPath := filepath.Join(dir, rawName)
	if err := os.WriteFile(rawPath, raw.Pix, 0666); err != nil {
		return err
	}
	fmt.Fprintf(out, "Saved %s (32x32 raw RGBA, %d bytes)\n", rawPath, len(raw.Pix))

	return nil
}

// writeFile creates path and streams enc's output into it.
func writeFile(path string, enc func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %v", path, err)
	}
	return f.Close()
}
