// Package web embeds the HTML templates served by the blog.
package web

import "embed"

// Templates holds base.html and one file per page.
//
//go:embed templates/*.html
var Templates embed.FS
