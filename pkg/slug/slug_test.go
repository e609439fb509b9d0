// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/microcctv/pkg/slug"
)

func TestFrom(t *testing.T) {
	tests := map[string]string{
		"Home Starter Kit":      "home-starter-kit",
		"  4x Dome + NVR (8ch)": "4x-dome-nvr-8ch",
		"Caméra Extérieure":     "camera-exterieure",
		"--Office__Pack--":      "office-pack",
		"!!!":                   "",
	}

	for input, want := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, want, slug.From(input))
		})
	}
}
