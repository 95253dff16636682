package tui

import (
	"image"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"zonedrawer/internal/config"
	"zonedrawer/internal/editor"
	"zonedrawer/internal/geom"
	"zonedrawer/internal/log"
	"zonedrawer/internal/scenario"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status    string
	statusErr bool

	cfg   config.Config
	lg    *log.Logger
	codec scenario.Codec
	ed    *editor.Editor

	// angle snapping latched on with "a", in addition to Shift/Alt
	snapLatched bool
	// primary button held since a press inside the map
	buttonDown bool

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// save prompt
	saveMode bool
	ti       textinput.Model

	// zones table
	showTable bool
	tbl       table.Model

	// hover state, in canvas micro-pixels and world units
	hovering   bool
	hoverMic   image.Point
	hoverWorld geom.Point
}

func New(cfg config.Config, lg *log.Logger) Model {
	m := Model{
		helpVisible: true,
		status:      "zonedrawer ready",
		cfg:         cfg,
		lg:          lg,
		codec:       scenario.NewCodec(cfg.Scale),
		snapLatched: cfg.SnapByDefault,
	}
	m.ed = editor.New(scenario.NewStore(), geom.FitMapper(cfg.Bounds, 1, 1), cfg.HandleRadius, lg)
	m.cwd = cfg.ScenarioDir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Scenarios"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// q and esc belong to the editor
	m.l.KeyMap.Quit.SetEnabled(false)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste scenario text here. Ctrl+S to load; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// save prompt setup
	m.ti = textinput.New()
	m.ti.Prompt = "save as: "
	m.ti.CharLimit = 512
	// zones table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a scenario file at launch.
func NewWithPath(cfg config.Config, lg *log.Logger, path string) Model {
	m := New(cfg, lg)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Store exposes the scenario being edited.
func (m Model) Store() *scenario.Store { return m.ed.Store }
