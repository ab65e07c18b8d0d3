// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuhost presents colorpick frames in a gogpu window.
//
// The data flow is:
//
//	colorpick.Controller (frame) -> Pixmap (CPU) -> GPU Texture -> Window
//
// A Host uploads each frame into an existing texture, asks the window for
// a redraw, switches the cursor while a drag is in progress and copies
// picked colors to the clipboard.
//
// # Usage
//
//	host, err := gpuhost.New(tex, app, 300, 300, gpuhost.WithPlatform(app))
//	if err != nil {
//	    return err
//	}
//	defer host.Close()
//
//	ctrl, err := colorpick.NewController(colorpick.KindField, 300, 300,
//	    colorpick.WithOnFrame(host.PresentFrame),
//	    colorpick.WithOnStateChange(host.OnStateChange))
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces:
//
//   - gpucontext.TextureUpdater for uploads
//   - gpucontext.WindowProvider for redraw requests
//   - small local interfaces for cursor and clipboard access
//
// Every gogpu.App satisfies the window and platform sides.
//
// # Thread Safety
//
// Host is safe for concurrent use.
package gpuhost
