package showcase

import "embed"

// EmbeddedAssets contains static assets shipped with the site:
// site.css and favicon.svg.
//
//go:embed static/*
var EmbeddedAssets embed.FS
