// Package util - Filename and numeric helpers used alongside the renderers.
package util

import "strings"

// imageExtensions are the suffixes CheckFileExt accepts. The slice is never
// modified; ImageExtensions hands out copies.
var imageExtensions = []string{"jpg", "jpeg", "bmp", "png", "ppm", "pgm"}

// ImageExtensions returns the accepted image filename suffixes, without dots.
func ImageExtensions() []string {
	return append([]string(nil), imageExtensions...)
}

// CheckFileExt reports whether name ends with one of the image suffixes,
// ignoring case.
//
// The match is on the raw suffix, not on a dotted extension, so "photo.PNG" and
// "snapshot_png" both match.
//
// Arguments:
// - name: A file name or path.
//
// Returns:
// - true if name ends with jpg, jpeg, bmp, png, ppm or pgm.
//
// @example
// CheckFileExt("frame-0001.JPG") // true
// CheckFileExt("notes.txt")      // false
func CheckFileExt(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// FilterImageFiles returns the names accepted by CheckFileExt, in their
// original order.
func FilterImageFiles(names []string) []string {
	var images []string
	for _, name := range names {
		if CheckFileExt(name) {
			images = append(images, name)
		}
	}
	return images
}
