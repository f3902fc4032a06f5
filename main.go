// Package main provides the entry point for the Pattern Compare application.
package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"pattern-compare/internal/app"
	"pattern-compare/internal/version"
	"pattern-compare/ui/mainwindow"
	"pattern-compare/ui/prefs"
)

const appTitle = "Pattern Compare"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.NewWithID("io.patterncompare.app")
	fyneApp.Settings().SetTheme(&app.CompareTheme{})

	appState := app.NewState()
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)

	// Optional command line arguments: original [generated]
	if len(os.Args) > 1 {
		if err := appState.LoadOriginal(os.Args[1]); err != nil {
			log.Printf("Failed to load original %s: %v", os.Args[1], err)
		}
	}
	if len(os.Args) > 2 {
		if err := appState.LoadGenerated(os.Args[2]); err != nil {
			log.Printf("Failed to load generated %s: %v", os.Args[2], err)
		}
	}

	setupHotReload(win)

	win.SetOnClosed(func() {
		win.SavePreferences()
	})
	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the binary is
// recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader()
	if reloader == nil {
		log.Println("Hot reload: unable to watch executable")
		return
	}

	log.Printf("Hot reload: watching %s (modified %s)",
		reloader.ExecPath(), reloader.StartupTime().Format("15:04:05"))

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		// The watcher fires on its own goroutine; dialogs belong on the UI
		// thread.
		fyne.Do(func() {
			dialog.ShowConfirm("New Version Available",
				"The application binary has been updated.\nRestart now?",
				func(restart bool) {
					if restart {
						win.SavePreferences()
						log.Println("Hot reload: restarting...")
						if err := reloader.Restart(); err != nil {
							log.Printf("Hot reload: restart failed: %v", err)
						}
						return
					}
					reloader.ResetBaseline()
					reloader.Start()
				}, win)
		})
	})

	reloader.Start()
}
