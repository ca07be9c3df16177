package builder

import "embed"

// EmbeddedAssets contains static assets shipped with the engine:
// livechart.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
