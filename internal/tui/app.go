package tui

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/storage"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

// ConfigReloadedMsg carries the config re-read after the file changed.
type ConfigReloadedMsg struct {
	Config *storage.Config
	Err    error
}

// layoutCache remembers that elements were measured and arranged for a
// given content width. The grid layout clears it when its values change.
type layoutCache struct {
	valid   bool
	width   int
	desired grid.Size
}

func (c *layoutCache) invalidate() {
	c.valid = false
}

// App is the main bubbletea model: one radio group laid out column-major.
type App struct {
	config   storage.Config
	options  *model.Group
	repeater *Repeater
	group    *RadioGroup
	layout   *grid.Layout
	cache    *layoutCache

	storage    storage.Storage
	history    *model.History
	watcher    *storage.ConfigWatcher
	configPath string

	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig
	help         help.Model
	filter       FilterState

	mode        Mode
	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Config       *storage.Config        // optional, uses default if nil
	Storage      storage.Storage        // optional, selection history is not kept if nil
	Watcher      *storage.ConfigWatcher // optional, enables live reload of ConfigPath
	ConfigPath   string
	Keys         *KeyMap              // optional, uses default if nil
	Styles       *Styles              // optional, uses default if nil
	LayoutConfig *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters. The last selection
// recorded for the group is restored.
func NewApp(params AppParams) (App, error) {
	config := storage.DefaultConfig()
	if params.Config != nil {
		config = *params.Config
	}

	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.LayoutConfig != nil {
		layoutConfig = *params.LayoutConfig
	}

	gridLayout, err := grid.NewLayout(config.MaximumColumns, config.ColumnSpacing, config.RowSpacing)
	if err != nil {
		return App{}, err
	}
	cache := &layoutCache{}
	gridLayout.OnInvalidate(cache.invalidate)

	repeater := NewRepeater(layoutConfig.Glyphs.Prefix(false, false))
	group := NewRadioGroup(repeater, gridLayout)

	history := model.NewHistory()
	if params.Storage != nil {
		loaded, err := params.Storage.Load()
		if err != nil {
			log.Printf("load history: %v", err)
		} else {
			history = loaded
		}
	}

	app := App{
		config:       config,
		options:      config.Group(),
		repeater:     repeater,
		group:        group,
		layout:       gridLayout,
		cache:        cache,
		storage:      params.Storage,
		history:      history,
		watcher:      params.Watcher,
		configPath:   params.ConfigPath,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		help:         help.New(),
		filter:       NewFilterState(layoutConfig),
	}
	app = app.WithDimensions(80, 24)

	group.SetOptions(app.options.Options)
	app.restoreSelection()
	return app, nil
}

// restoreSelection checks the option last recorded for this group.
func (a *App) restoreSelection() {
	record := a.history.Latest(a.config.Name)
	if record == nil {
		return
	}
	index := a.options.IndexOf(record.OptionID)
	if index < 0 {
		index = indexOfOption(a.options.Options, model.Option{Label: record.Label})
	}
	if index >= 0 && a.group.SelectIndex(index) {
		a.group.ResetFocus()
	}
}

// recordSelection appends the current selection to the history and saves
// it. Nothing is recorded if the selection did not change.
func (a *App) recordSelection() {
	if a.storage == nil {
		return
	}
	selected := a.group.SelectedOption()
	if selected == nil {
		return
	}
	if last := a.history.Latest(a.config.Name); last != nil && last.Label == selected.Label && last.Index == a.group.SelectedIndex() {
		return
	}

	a.history.Record(model.SelectionRecord{
		Group:      a.config.Name,
		OptionID:   selected.ID,
		Label:      selected.Label,
		Index:      a.group.SelectedIndex(),
		SelectedAt: time.Now(),
	})
	if err := a.storage.Save(a.history); err != nil {
		log.Printf("save history: %v", err)
	}
}

// WithDimensions returns a copy of the app sized to width x height.
func (a App) WithDimensions(width, height int) App {
	a.width = width
	a.height = height
	a.help.Width = layout.CalculateContentWidth(width, a.layoutConfig.Frame)
	return a
}

// Group returns the radio group controller.
func (a App) Group() *RadioGroup {
	return a.group
}

// Layout returns the grid layout.
func (a App) Layout() *grid.Layout {
	return a.layout
}

// Config returns the active configuration.
func (a App) Config() storage.Config {
	return a.config
}

// History returns the selection history.
func (a App) History() *model.History {
	return a.history
}

// Mode returns the current input mode.
func (a App) Mode() Mode {
	return a.mode
}

// Message returns the current status message.
func (a App) Message() (string, MessageType) {
	return a.messageText, a.messageType
}

func (a *App) setMessage(t MessageType, text string) {
	a.messageType = t
	a.messageText = text
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.watcher == nil || a.configPath == "" {
		return nil
	}
	return waitForConfigChange(a.watcher, a.configPath)
}

// waitForConfigChange blocks until the watcher reports a change, then
// re-reads the config.
func waitForConfigChange(w *storage.ConfigWatcher, path string) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-w.Changes(); !ok {
			return nil
		}
		config, err := storage.ReadConfig(path)
		return ConfigReloadedMsg{Config: config, Err: err}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.WithDimensions(msg.Width, msg.Height), nil

	case ConfigReloadedMsg:
		a.applyConfig(msg)
		if a.watcher != nil && a.configPath != "" {
			return a, waitForConfigChange(a.watcher, a.configPath)
		}
		return a, nil

	case tea.KeyMsg:
		if a.mode == ModeFilter {
			return a.updateFilter(msg)
		}
		return a.updateNormal(msg)
	}

	return a, nil
}

func (a App) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a.messageText = ""

	switch {
	case key.Matches(msg, a.keys.Quit):
		a.recordSelection()
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		a.group.MoveNext(true)

	case key.Matches(msg, a.keys.Up):
		a.group.MovePrevious(true)

	case key.Matches(msg, a.keys.Right):
		a.group.MoveRight(true)

	case key.Matches(msg, a.keys.Left):
		a.group.MoveLeft(true)

	case key.Matches(msg, a.keys.FocusDown):
		a.group.MoveNext(false)

	case key.Matches(msg, a.keys.FocusUp):
		a.group.MovePrevious(false)

	case key.Matches(msg, a.keys.FocusRight):
		a.group.MoveRight(false)

	case key.Matches(msg, a.keys.FocusLeft):
		a.group.MoveLeft(false)

	case key.Matches(msg, a.keys.Select):
		a.group.SelectFocused()

	case key.Matches(msg, a.keys.Clear):
		a.group.ClearSelection()

	case key.Matches(msg, a.keys.Yank):
		a.yankSelected()

	case key.Matches(msg, a.keys.Filter):
		a.mode = ModeFilter
		a.filter.Reset()
		return a, a.filter.Input.Focus()

	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	}

	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		a.closeFilter()
		return a, nil

	case tea.KeyEnter:
		target := a.filter.Target(a.options)
		a.closeFilter()
		if target < 0 || !a.group.Focus(target, true) {
			a.setMessage(MessageInfo, "No match")
		}
		return a, nil

	case tea.KeyDown:
		if a.filter.Cursor < len(a.filter.Matches)-1 {
			a.filter.Cursor++
		}
		return a, nil

	case tea.KeyUp:
		if a.filter.Cursor > 0 {
			a.filter.Cursor--
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.filter.Input, cmd = a.filter.Input.Update(msg)
	a.filter.Refresh(a.options)
	return a, cmd
}

func (a *App) closeFilter() {
	a.filter.Input.Blur()
	a.filter.Reset()
	a.mode = ModeNormal
}

// yankSelected copies the selected label to the system clipboard.
func (a *App) yankSelected() {
	selected := a.group.SelectedOption()
	if selected == nil {
		a.setMessage(MessageInfo, "Nothing selected")
		return
	}
	if err := clipboard.WriteAll(selected.Label); err != nil {
		a.setMessage(MessageError, "Clipboard unavailable: "+err.Error())
		return
	}
	a.setMessage(MessageSuccess, "Yanked "+selected.Label)
}

// applyConfig swaps in a reloaded config. Layout values go through the grid
// layout so that a change invalidates the cached arrangement.
func (a *App) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		a.setMessage(MessageError, "Config reload failed: "+msg.Err.Error())
		return
	}

	config := *msg.Config
	if err := a.layout.SetMaximumColumns(config.MaximumColumns); err != nil {
		a.setMessage(MessageError, err.Error())
		return
	}
	a.layout.SetColumnSpacing(config.ColumnSpacing)
	a.layout.SetRowSpacing(config.RowSpacing)

	a.config = config
	a.options = config.Group()
	a.group.SetOptions(a.options.Options)
	a.cache.invalidate()
	a.setMessage(MessageInfo, "Config reloaded")
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
