package window

import "sync"

// FakeHost records calls and blocks Run until Quit. CreateErr is returned
// from Create.
type FakeHost struct {
	CreateErr error

	mu          sync.Mutex
	Title       string
	Origin      Point
	Size        Size
	QuitOnClose bool
	Ran         bool
	quit        chan struct{}
	quitOnce    sync.Once
}

func NewFake() *FakeHost {
	return &FakeHost{quit: make(chan struct{})}
}

func (f *FakeHost) Create(title string, origin Point, size Size) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Title, f.Origin, f.Size = title, origin, size
	return f.CreateErr
}

func (f *FakeHost) SetQuitOnClose(quit bool) {
	f.mu.Lock()
	f.QuitOnClose = quit
	f.mu.Unlock()
}

func (f *FakeHost) Run() {
	f.mu.Lock()
	f.Ran = true
	f.mu.Unlock()
	<-f.quit
}

func (f *FakeHost) Quit() {
	f.quitOnce.Do(func() { close(f.quit) })
}
