// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuhost

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/colorpick"
)

// Common errors returned by Host operations.
var (
	// ErrHostClosed is returned when operations are attempted on a closed host.
	ErrHostClosed = errors.New("gpuhost: host is closed")

	// ErrInvalidDimensions is returned when sizes are invalid or do not match.
	ErrInvalidDimensions = errors.New("gpuhost: invalid dimensions")

	// ErrNilTexture is returned when a nil TextureUpdater is passed.
	ErrNilTexture = errors.New("gpuhost: nil TextureUpdater")
)

// CursorSetter changes the pointer cursor.
// gpucontext.PlatformProvider implements it.
type CursorSetter interface {
	SetCursor(cursor gpucontext.CursorShape)
}

// ClipboardWriter writes text to the system clipboard.
// gpucontext.PlatformProvider implements it.
type ClipboardWriter interface {
	ClipboardWrite(text string) error
}

// Option configures a Host during creation.
type Option func(*Host)

// WithCursor sets the cursor target used by OnStateChange.
func WithCursor(c CursorSetter) Option {
	return func(h *Host) {
		h.cursor = c
	}
}

// WithClipboard sets the clipboard target used by CopyColor.
func WithClipboard(c ClipboardWriter) Option {
	return func(h *Host) {
		h.clipboard = c
	}
}

// WithPlatform uses p for both cursor and clipboard access.
func WithPlatform(p gpucontext.PlatformProvider) Option {
	return func(h *Host) {
		h.cursor = p
		h.clipboard = p
	}
}

// Host owns the presentation side of one picker surface.
type Host struct {
	mu sync.Mutex

	tex       gpucontext.TextureUpdater
	win       gpucontext.WindowProvider
	cursor    CursorSetter
	clipboard ClipboardWriter

	width    int
	height   int
	uploads  int
	dragging bool
	closed   bool
}

// New creates a host presenting width×height frames into tex.
// win may be nil for headless use, in which case no redraw is requested.
func New(tex gpucontext.TextureUpdater, win gpucontext.WindowProvider, width, height int, opts ...Option) (*Host, error) {
	if tex == nil {
		return nil, ErrNilTexture
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	h := &Host{
		tex:    tex,
		win:    win,
		width:  width,
		height: height,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Size returns the frame dimensions the host accepts.
func (h *Host) Size() (width, height int) {
	return h.width, h.height
}

// Format reports the texture format Present uploads.
func (h *Host) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Uploads returns the number of frames uploaded so far.
func (h *Host) Uploads() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.uploads
}

// Present uploads pm into the texture and requests a redraw.
func (h *Host) Present(pm *colorpick.Pixmap) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	if pm.Width() != h.width || pm.Height() != h.height {
		return fmt.Errorf("%w: frame %dx%d, host %dx%d",
			ErrInvalidDimensions, pm.Width(), pm.Height(), h.width, h.height)
	}
	if err := h.tex.UpdateData(pm.Data()); err != nil {
		return fmt.Errorf("gpuhost: texture update failed: %w", err)
	}
	h.uploads++

	if h.win != nil {
		h.win.RequestRedraw()
	}
	return nil
}

// PresentFrame is Present with the signature of a frame hook.
// Failures are logged instead of returned.
func (h *Host) PresentFrame(pm *colorpick.Pixmap) {
	if err := h.Present(pm); err != nil {
		colorpick.Logger().Warn("gpuhost: present failed", "err", err)
	}
}

// OnStateChange shows a crosshair while dragging and the default cursor
// otherwise. It has the signature of a controller state hook.
func (h *Host) OnStateChange(s colorpick.State) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.dragging = s == colorpick.StateDragging
	if h.cursor == nil {
		return
	}
	if h.dragging {
		h.cursor.SetCursor(gpucontext.CursorCrosshair)
	} else {
		h.cursor.SetCursor(gpucontext.CursorDefault)
	}
}

// Dragging reports whether the last state seen by OnStateChange was a drag.
func (h *Host) Dragging() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dragging
}

// CopyColor writes the "#rrggbb" form of c to the clipboard.
// It does nothing when no clipboard was configured.
func (h *Host) CopyColor(c colorpick.Color) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return ErrHostClosed
	}
	if h.clipboard == nil {
		return nil
	}
	if err := h.clipboard.ClipboardWrite(colorpick.Encode(c)); err != nil {
		return fmt.Errorf("gpuhost: clipboard write failed: %w", err)
	}
	return nil
}

// Close restores the default cursor and releases the host.
// Close is idempotent.
func (h *Host) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if h.dragging && h.cursor != nil {
		h.cursor.SetCursor(gpucontext.CursorDefault)
	}
	h.dragging = false
	h.tex = nil
	h.win = nil
	return nil
}
