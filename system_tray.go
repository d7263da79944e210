package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

func (c *Chime) setupSystemTray() {
	c.updateSystemTrayMenu()
}

func (c *Chime) updateSystemTrayMenu() {
	desk, ok := c.app.(desktop.App)
	if !ok {
		return
	}

	// Ticks arrive several times a second; only rebuild the menu when the
	// line it shows actually changed.
	status := c.trayStatusLine()
	if status == c.lastTrayStatus {
		return
	}
	c.lastTrayStatus = status

	config := c.timer.Config()
	menuItems := []*fyne.MenuItem{}

	statusItem := fyne.NewMenuItem(status, nil)
	statusItem.Disabled = true
	menuItems = append(menuItems, statusItem, fyne.NewMenuItemSeparator())

	if c.timer.Triggered() {
		menuItems = append(menuItems, fyne.NewMenuItem("Dismiss alarm", func() {
			c.timer.Dismiss()
		}))
	} else if config.Enabled {
		menuItems = append(menuItems, fyne.NewMenuItem("Disarm alarm", func() {
			c.timer.Disable()
		}))
	} else {
		menuItems = append(menuItems, fyne.NewMenuItem("Arm alarm", func() {
			c.timer.Enable()
		}))
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Show clock", func() {
			c.clockWindow.Show()
		}),
		fyne.NewMenuItem("Settings", func() {
			c.showSettingsWindow()
		}),
	)

	menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	menuItems = append(menuItems, fyne.NewMenuItem("Quit", func() {
		c.quit()
	}))

	menu := fyne.NewMenu("Chime", menuItems...)
	desk.SetSystemTrayMenu(menu)
	desk.SetSystemTrayIcon(theme.HistoryIcon())
}

// trayStatusLine summarizes the alarm for the disabled header item.
func (c *Chime) trayStatusLine() string {
	config := c.timer.Config()

	if c.timer.Triggered() {
		return "Ringing now"
	}
	if !config.Enabled {
		return fmt.Sprintf("Alarm %02d:%02d - off", config.Hour, config.Minute)
	}

	next := c.timer.NextOccurrence(c.timer.Now())
	return fmt.Sprintf("Next alarm %s", next.Format("3:04 PM"))
}
