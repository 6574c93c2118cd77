// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/gputypes"

// ChooseFormat picks the swapchain color format from the formats a surface
// advertises: the first sRGB format, or the first format if none is sRGB.
// It returns TextureFormatUndefined for an empty list.
func ChooseFormat(formats []gputypes.TextureFormat) gputypes.TextureFormat {
	for _, f := range formats {
		if f.IsSrgb() {
			return f
		}
	}
	if len(formats) == 0 {
		return gputypes.TextureFormatUndefined
	}
	return formats[0]
}
