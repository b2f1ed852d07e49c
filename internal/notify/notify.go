package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

type Urgency byte

const (
	Low      Urgency = 0
	Normal   Urgency = 1
	Critical Urgency = 2
)

// Notifier posts desktop notifications to whatever daemon owns
// org.freedesktop.Notifications on the session bus.
type Notifier struct {
	AppName string
	Icon    string
}

func New(appName string) *Notifier {
	return &Notifier{AppName: appName, Icon: "preferences-desktop-wallpaper"}
}

func (n *Notifier) Send(summary, body string, urgency Urgency) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(byte(urgency)),
	}

	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		n.AppName,
		uint32(0),
		n.Icon,
		summary,
		body,
		[]string{},
		hints,
		int32(-1), // server default timeout
	)

	if call.Err != nil {
		return fmt.Errorf("failed to send notification: %w", call.Err)
	}
	return nil
}
