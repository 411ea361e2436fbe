package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/rotview/pkg/geom"
)

// parseSize parses "WxH" into a non-negative pixel size
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q: want WxH", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if w < 0 || h < 0 {
		return 0, 0, fmt.Errorf("invalid size %q: negative extent", s)
	}
	return w, h, nil
}

// parseFloats parses n comma separated numbers
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("invalid value %q: want %d comma separated numbers", s, n)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number in %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}

// parsePoint parses "X,Y"
func parsePoint(s string) (geom.Point, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Pt(v[0], v[1]), nil
}

// parseRect parses "x1,y1,x2,y2"
func parseRect(s string) (geom.Rect, error) {
	v, err := parseFloats(s, 4)
	if err != nil {
		return geom.Rect{}, err
	}
	return geom.R(v[0], v[1], v[2], v[3]), nil
}
