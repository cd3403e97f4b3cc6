// Package platform adapts desktop services (notifications, audio, focus mode
// and haptic feedback) to the interfaces the timer drives. Every call is
// best-effort and callers are expected to log rather than abort on error.
package platform

import "context"

// Notifier shows user notifications.
type Notifier interface {
	RequestPermission(ctx context.Context) error
	Show(title, body, sound string) error
	Cancel(id string) error
}

// Player plays named sound cues or audio files.
type Player interface {
	Play(name string) error
	Stop() error
	SetVolume(level float64) error
}

// FocusMode toggles an operating system do-not-disturb integration.
type FocusMode interface {
	RequestAccess(ctx context.Context) error
	Enable(ctx context.Context) error
	Disable(ctx context.Context) error
}

// Haptics gives short physical or audible feedback. intensity is in [0, 1].
type Haptics interface {
	Pulse(intensity float64) error
}

// Nop satisfies every platform interface and does nothing.
type Nop struct{}

var (
	_ Notifier  = Nop{}
	_ Player    = Nop{}
	_ FocusMode = Nop{}
	_ Haptics   = Nop{}
)

func (Nop) RequestPermission(context.Context) error { return nil }

func (Nop) Show(string, string, string) error { return nil }

func (Nop) Cancel(string) error { return nil }

func (Nop) Play(string) error { return nil }

func (Nop) Stop() error { return nil }

func (Nop) SetVolume(float64) error { return nil }

func (Nop) RequestAccess(context.Context) error { return nil }

func (Nop) Enable(context.Context) error { return nil }

func (Nop) Disable(context.Context) error { return nil }

func (Nop) Pulse(float64) error { return nil }
