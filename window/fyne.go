//go:build gui

package window

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-gl/glfw/v3.3/glfw"

	"instal/engine"
)

const appID = "io.instal.launcher"

type fyneHost struct {
	project engine.Project
	palette Palette
	app     fyne.App
	window  fyne.Window
	origin  Point
}

func New(project engine.Project, palette Palette) Host {
	return &fyneHost{project: project, palette: palette}
}

func (h *fyneHost) Create(title string, origin Point, size Size) (err error) {
	// Driver start-up failures surface as panics.
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("create window: %v", v)
		}
	}()

	h.app = app.NewWithID(appID)
	if h.app.Driver() == nil {
		return fmt.Errorf("create window: no display driver")
	}
	h.app.Settings().SetTheme(newSplashTheme(h.palette))

	h.window = h.app.NewWindow(title)
	h.window.SetContent(container.NewCenter(widget.NewLabel(title)))
	h.window.Resize(fyne.NewSize(float32(size.Width), float32(size.Height)))
	h.origin = origin

	h.app.Lifecycle().SetOnStarted(func() {
		fyne.Do(func() {
			if glfwWin := glfw.GetCurrentContext(); glfwWin != nil {
				glfwWin.SetPos(h.origin.X, h.origin.Y)
			}
		})
	})
	return nil
}

func (h *fyneHost) SetQuitOnClose(quit bool) {
	if h.window == nil {
		return
	}
	if quit {
		h.window.SetMaster()
		return
	}
	h.window.SetCloseIntercept(h.window.Hide)
}

func (h *fyneHost) Run() {
	if h.window == nil {
		return
	}
	h.window.Show()
	h.app.Run()
}

func (h *fyneHost) Quit() {
	if h.app == nil {
		return
	}
	fyne.Do(h.app.Quit)
}
