package catalog

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// svgShapeAttrs lists the geometry and paint attributes shared by the SVG
// drawing elements world types use for icons.
var svgShapeAttrs = []string{
	"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
	"points", "rx", "ry", "fill", "stroke", "stroke-width",
	"stroke-linecap", "stroke-linejoin", "class",
}

var iconPolicy = newIconPolicy()

// SanitizeIcon reduces designer-supplied inline SVG to a safe subset. The
// empty string is returned when nothing safe remains.
func SanitizeIcon(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconPolicy.Sanitize(trimmed))
}

// newIconPolicy builds the allow-list for inline icon markup: the svg root
// with sizing and accessibility attributes, the plain drawing elements, and
// enough structure (defs, use, clipPath) for icons assembled from shared
// fragments. Everything else, scripts included, is stripped.
func newIconPolicy() *bluemonday.Policy {
	allowed := map[string][]string{
		"svg": {
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin",
			"aria-hidden", "role", "focusable", "class",
		},
		"use":      {"href", "xlink:href", "clip-path"},
		"clipPath": {"id", "clipPathUnits"},
		"defs":     {"id"},
		"g":        {"id"},
		"title":    nil,
		"desc":     nil,
	}
	for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"} {
		allowed[el] = svgShapeAttrs
	}

	policy := bluemonday.StrictPolicy()
	for el, attrs := range allowed {
		policy.AllowElements(el)
		if len(attrs) > 0 {
			policy.AllowAttrs(attrs...).OnElements(el)
		}
	}
	return policy
}
