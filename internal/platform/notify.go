package platform

import (
	"context"

	"github.com/gen2brain/beeep"
)

// DesktopNotifier sends notifications through the desktop notification
// daemon.
type DesktopNotifier struct {
	// Icon is an optional path to an image shown with each notification.
	Icon string

	notify func(title, message, icon string) error
	alert  func(title, message, icon string) error
}

// NewDesktopNotifier returns a notifier backed by beeep.
func NewDesktopNotifier(icon string) *DesktopNotifier {
	return &DesktopNotifier{
		Icon:   icon,
		notify: beeep.Notify,
		alert:  beeep.Alert,
	}
}

// RequestPermission is a no-op: desktop notifications need no grant.
func (n *DesktopNotifier) RequestPermission(context.Context) error {
	return nil
}

// Show displays a notification. A non-empty sound asks the desktop to play
// its alert sound with it.
func (n *DesktopNotifier) Show(title, body, sound string) error {
	if sound != "" {
		return n.alert(title, body, n.Icon)
	}

	return n.notify(title, body, n.Icon)
}

// Cancel is not available for desktop notifications.
func (n *DesktopNotifier) Cancel(string) error {
	return ErrUnsupported.Fmt("cancelling notifications")
}
