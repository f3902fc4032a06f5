// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"
	"image"
	"path/filepath"

	"pattern-compare/internal/app"
	"pattern-compare/internal/imageio"
	"pattern-compare/internal/version"
	"pattern-compare/ui/prefs"
	"pattern-compare/ui/viewer"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
)

const (
	prefKeyLastDir       = "lastDirectory"
	prefKeyLastOriginal  = "lastOriginal"
	prefKeyLastGenerated = "lastGenerated"
)

// MainWindow is the primary application window: the host collaborator that
// loads subject images and launches the comparison viewer.
type MainWindow struct {
	fyne.Window
	app    fyne.App
	state  *app.State
	prefs  *prefs.Prefs
	viewer *viewer.Viewer

	originalPreview  *fynecanvas.Image
	generatedPreview *fynecanvas.Image
	originalLabel    *widget.Label
	generatedLabel   *widget.Label
	patternSelect    *widget.Select
	compareBtn       *widget.Button
	statusBar        *widget.Label
}

// New creates a new main window.
func New(fyneApp fyne.App, state *app.State, appPrefs *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Pattern Compare")

	mw := &MainWindow{
		Window: win,
		app:    fyneApp,
		state:  state,
		prefs:  appPrefs,
	}

	mw.viewer = viewer.New(win)
	mw.viewer.OnClose(func() {
		mw.state.Emit(app.EventViewerClosed, nil)
		mw.updateStatus("Viewer closed")
	})

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()
	mw.restoreLastImages()

	win.Resize(fyne.NewSize(960, 640))
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	mw.originalLabel = widget.NewLabel("No original image loaded")
	mw.generatedLabel = widget.NewLabel("No generated image loaded")

	mw.originalPreview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	mw.originalPreview.SetMinSize(fyne.NewSize(360, 280))
	mw.generatedPreview = &fynecanvas.Image{FillMode: fynecanvas.ImageFillContain}
	mw.generatedPreview.SetMinSize(fyne.NewSize(360, 280))

	mw.patternSelect = widget.NewSelect(
		[]string{"Not a pattern", "Seamless", "Two-way"},
		func(choice string) {
			switch choice {
			case "Seamless":
				mw.state.SetPattern(viewer.PatternSeamless, true)
			case "Two-way":
				mw.state.SetPattern(viewer.PatternTwoway, true)
			default:
				mw.state.SetPattern("", false)
			}
		})
	mw.patternSelect.SetSelected("Not a pattern")

	mw.compareBtn = widget.NewButton("Compare", mw.onCompare)
	mw.compareBtn.Importance = widget.HighImportance
	mw.compareBtn.Disable()

	mw.statusBar = widget.NewLabel("Ready")

	originalCard := widget.NewCard("Original", "", container.NewVBox(
		mw.originalPreview,
		mw.originalLabel,
		widget.NewButton("Open...", mw.onOpenOriginal),
	))
	generatedCard := widget.NewCard("Generated", "", container.NewVBox(
		mw.generatedPreview,
		mw.generatedLabel,
		container.NewHBox(
			widget.NewButton("Open...", mw.onOpenGenerated),
			widget.NewButton("Add Variant...", mw.onAddVariant),
		),
	))

	controls := container.NewHBox(
		widget.NewLabel("Pattern:"),
		mw.patternSelect,
		mw.compareBtn,
		widget.NewButton("Show Differences", mw.onShowDifferences),
	)

	content := container.NewBorder(
		nil,
		container.NewVBox(controls, container.NewPadded(mw.statusBar)),
		nil,
		nil,
		container.NewGridWithColumns(2, originalCard, generatedCard),
	)

	mw.SetContent(content)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Original...", mw.onOpenOriginal),
		fyne.NewMenuItem("Open Generated...", mw.onOpenGenerated),
		fyne.NewMenuItem("Add Generated Variant...", mw.onAddVariant),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { mw.app.Quit() }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Compare", mw.onCompare),
		fyne.NewMenuItem("Show Differences", mw.onShowDifferences),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventSubjectLoaded, func(data interface{}) {
		mw.syncPreviews()
		if path, ok := data.(string); ok {
			mw.updateStatus("Loaded " + filepath.Base(path))
		}
	})

	mw.state.On(app.EventVariantAdded, func(data interface{}) {
		if path, ok := data.(string); ok {
			mw.updateStatus(fmt.Sprintf("Variant added: %s (%d total)",
				filepath.Base(path), len(mw.state.VariantPaths)))
		}
	})

	mw.state.On(app.EventHeatmapComputed, func(interface{}) {
		mw.updateStatus("Difference heatmap computed")
	})
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

// syncPreviews refreshes the preview thumbnails and the compare button state.
func (mw *MainWindow) syncPreviews() {
	if mw.state.Original != nil && mw.state.Original.Image != nil {
		mw.originalPreview.Image = mw.state.Original.Image
		mw.originalPreview.Refresh()
		mw.originalLabel.SetText(filepath.Base(mw.state.Original.Path))
	}
	if mw.state.Generated != nil && mw.state.Generated.Image != nil {
		mw.generatedPreview.Image = mw.state.Generated.Image
		mw.generatedPreview.Refresh()
		mw.generatedLabel.SetText(filepath.Base(mw.state.Generated.Path))
	}
	if mw.state.HasSubject() {
		mw.compareBtn.Enable()
	}
}

// getLastDir returns the last used directory as a ListableURI, or nil.
func (mw *MainWindow) getLastDir() fyne.ListableURI {
	path := mw.prefs.String(prefKeyLastDir)
	if path == "" {
		return nil
	}
	uri := storage.NewFileURI(path)
	listable, err := storage.ListerForURI(uri)
	if err != nil {
		return nil
	}
	return listable
}

// saveLastDir saves the directory of the given file path.
func (mw *MainWindow) saveLastDir(filePath string) {
	mw.prefs.SetString(prefKeyLastDir, filepath.Dir(filePath))
}

// restoreLastImages loads the previously used subject images.
func (mw *MainWindow) restoreLastImages() {
	if path := mw.prefs.String(prefKeyLastOriginal); path != "" {
		if err := mw.state.LoadOriginal(path); err != nil {
			mw.updateStatus("Could not restore original: " + err.Error())
		}
	}
	if path := mw.prefs.String(prefKeyLastGenerated); path != "" {
		if err := mw.state.LoadGenerated(path); err != nil {
			mw.updateStatus("Could not restore generated: " + err.Error())
		}
	}
	mw.syncPreviews()
	mw.state.SetModified(false)
}

// SavePreferences writes preferences to disk.
func (mw *MainWindow) SavePreferences() {
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus("Could not save preferences: " + err.Error())
	}
}

// Menu action handlers

func (mw *MainWindow) onOpenOriginal() {
	mw.openImage(func(path string) error {
		if err := mw.state.LoadOriginal(path); err != nil {
			return err
		}
		mw.prefs.SetString(prefKeyLastOriginal, path)
		return nil
	})
}

func (mw *MainWindow) onOpenGenerated() {
	mw.openImage(func(path string) error {
		if err := mw.state.LoadGenerated(path); err != nil {
			return err
		}
		mw.prefs.SetString(prefKeyLastGenerated, path)
		return nil
	})
}

func (mw *MainWindow) onAddVariant() {
	mw.openImage(mw.state.AddVariant)
}

func (mw *MainWindow) openImage(load func(path string) error) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		reader.Close()
		path := reader.URI().Path()
		mw.saveLastDir(path)
		if err := load(path); err != nil {
			dialog.ShowError(err, mw.Window)
		}
	}, mw.Window)
	fd.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions()))
	if loc := mw.getLastDir(); loc != nil {
		fd.SetLocation(loc)
	}
	fd.Show()
}

// onCompare opens the comparison viewer over the loaded subject.
func (mw *MainWindow) onCompare() {
	if !mw.state.HasSubject() {
		mw.updateStatus("Load both images first")
		return
	}
	mw.viewer.Open(mw.buildSubject(mw.state.Generated.Image))
	mw.state.Emit(app.EventViewerOpened, nil)
	mw.updateStatus("Comparing (Escape closes the viewer)")
}

// onShowDifferences opens the viewer with the difference heatmap as the
// generated layer, so the overlay and slider modes reveal edit regions.
func (mw *MainWindow) onShowDifferences() {
	if !mw.state.HasSubject() {
		mw.updateStatus("Load both images first")
		return
	}
	heatmap, err := mw.state.ComputeHeatmap()
	if err != nil {
		dialog.ShowError(err, mw.Window)
		return
	}
	mw.viewer.Open(mw.buildSubject(heatmap))
	mw.state.Emit(app.EventViewerOpened, nil)
	mw.updateStatus("Showing differences")
}

// buildSubject assembles the viewer's comparison subject from state.
func (mw *MainWindow) buildSubject(generated image.Image) *viewer.Subject {
	sub := &viewer.Subject{
		OriginalURL:  mw.state.Original.Path,
		GeneratedURL: mw.state.Generated.Path,
		PatternType:  mw.state.PatternType,
		Seamless:     mw.state.Seamless,
		Fullscreen:   true,
		Original:     mw.state.Original.Image,
		Generated:    generated,
		Variants:     make(map[string]image.Image),
	}
	sub.Variants[sub.GeneratedURL] = generated
	if len(mw.state.VariantPaths) > 0 {
		sub.GeneratedURLs = append([]string{sub.GeneratedURL}, mw.state.VariantPaths...)
		for _, p := range mw.state.VariantPaths {
			sub.Variants[p] = mw.state.Variants[p]
		}
	}
	return sub
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Pattern Compare",
		fmt.Sprintf("Pattern Compare v%s\n\n"+
			"A comparison viewer for AI-generated image results.\n\n"+
			"Built: %s\nCommit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
