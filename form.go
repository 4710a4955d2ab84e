package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type page int

const (
	pageForm page = iota
	pageTable
)

// focus order on the form page: date, time, then the five scale rows.
const (
	focusDate = iota
	focusTime
	focusScales
)

type UIModel struct {
	page  page
	repo  *Repo
	cfg   *Config
	state *UIState

	dateInput textinput.Model
	timeInput textinput.Model
	scales    []int
	focus     int
	summary   int

	entryTable    table.Model
	confirmDelete bool

	status    string
	statusErr bool

	width, height int
}

func NewUIModel(repo *Repo, cfg *Config, state *UIState) UIModel {
	now := time.Now()

	di := textinput.New()
	di.Placeholder = cfg.DateFormat
	di.SetValue(now.Format(cfg.DateFormat))
	di.CharLimit = 10
	di.Width = 12
	di.Focus()

	ti := textinput.New()
	ti.Placeholder = cfg.TimeFormat
	ti.SetValue(now.Format(cfg.TimeFormat))
	ti.CharLimit = 5
	ti.Width = 12

	columns := []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Date", Width: 10},
		{Title: "Time", Width: 5},
	}
	for _, f := range ScaleFields {
		columns = append(columns, table.Column{Title: f.Name, Width: len(f.Name) + 1})
	}
	columns = append(columns, table.Column{Title: "sum", Width: 4})

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	ts := table.DefaultStyles()
	ts.Header = TableHeaderStyle
	ts.Selected = TableSelectedStyle
	t.SetStyles(ts)

	m := UIModel{
		page:       pageForm,
		repo:       repo,
		cfg:        cfg,
		state:      state,
		dateInput:  di,
		timeInput:  ti,
		scales:     make([]int, len(ScaleFields)),
		entryTable: t,
	}

	if state != nil && state.LastPage == int(pageTable) {
		m.page = pageTable
	}
	m.refreshTable()

	return m
}

func (m UIModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m UIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.entryTable.SetWidth(msg.Width - 8)
		if msg.Height > 12 {
			m.entryTable.SetHeight(msg.Height - 10)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.saveUIState()
			return m, tea.Quit
		case tea.KeyTab:
			m.switchPage()
			return m, nil
		}

		if m.page == pageForm {
			return m.updateForm(msg)
		}
		return m.updateTable(msg)
	}

	return m.updateInputs(msg)
}

func (m *UIModel) switchPage() {
	if m.page == pageForm {
		m.page = pageTable
		m.refreshTable()
	} else {
		m.page = pageForm
	}
	m.confirmDelete = false
	m.status = ""
}

func (m UIModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if m.focus > 0 {
			m.focus--
		}
		m.syncFocus()
		return m, nil
	case "down":
		if m.focus < focusScales+len(m.scales)-1 {
			m.focus++
		}
		m.syncFocus()
		return m, nil
	case "left":
		if i := m.focus - focusScales; i >= 0 {
			if m.scales[i] > ScaleMin {
				m.scales[i]--
			}
			m.summary = SummaryOf(m.scales...)
			return m, nil
		}
	case "right":
		if i := m.focus - focusScales; i >= 0 {
			if m.scales[i] < ScaleMax {
				m.scales[i]++
			}
			m.summary = SummaryOf(m.scales...)
			return m, nil
		}
	case "enter", "ctrl+s":
		m.commit()
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m UIModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.dateInput, cmd = m.dateInput.Update(msg)
	cmds = append(cmds, cmd)
	m.timeInput, cmd = m.timeInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *UIModel) syncFocus() {
	m.dateInput.Blur()
	m.timeInput.Blur()
	switch m.focus {
	case focusDate:
		m.dateInput.Focus()
	case focusTime:
		m.timeInput.Focus()
	}
}

// commit reads the form as it stands, derives the summary one last time and
// hands the record to the store. Failures land in the status line instead
// of being swallowed.
func (m *UIModel) commit() {
	e := Entry{
		Date: strings.TrimSpace(m.dateInput.Value()),
		Time: strings.TrimSpace(m.timeInput.Value()),
	}
	for i, f := range ScaleFields {
		f.Set(&e, m.scales[i])
	}
	m.summary = SummaryOf(m.scales...)
	e.Summary = m.summary

	if err := e.Validate(m.cfg.DateFormat, m.cfg.TimeFormat); err != nil {
		m.setStatus(err.Error(), true)
		return
	}

	id, err := m.repo.InsertEntry(e)
	if err != nil {
		m.setStatus(fmt.Sprintf("not saved: %v", err), true)
		return
	}

	m.setStatus(fmt.Sprintf("saved entry #%d", id), false)
	m.refreshTable()
}

func (m UIModel) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirmDelete {
		switch msg.String() {
		case "y", "Y":
			m.confirmDelete = false
			m.deleteSelected()
		default:
			m.confirmDelete = false
			m.setStatus("delete cancelled", false)
		}
		return m, nil
	}

	switch msg.String() {
	case "q":
		m.saveUIState()
		return m, tea.Quit
	case "r":
		m.refreshTable()
		return m, nil
	case "d", "x":
		if len(m.entryTable.Rows()) > 0 {
			m.confirmDelete = true
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.entryTable, cmd = m.entryTable.Update(msg)
	return m, cmd
}

func (m *UIModel) deleteSelected() {
	row := m.entryTable.SelectedRow()
	if row == nil {
		return
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return
	}
	if err := m.repo.DeleteEntries(id); err != nil {
		m.setStatus(fmt.Sprintf("not deleted: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("deleted entry #%d", id), false)
	m.refreshTable()
}

// refreshTable re-queries the store; the table page always reflects what is
// actually persisted.
func (m *UIModel) refreshTable() {
	entries, err := m.repo.ListEntries()
	if err != nil {
		m.setStatus(fmt.Sprintf("load failed: %v", err), true)
		m.entryTable.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		row := table.Row{
			strconv.FormatInt(e.ID, 10),
			e.Date,
			e.Time,
		}
		for _, v := range e.ScaleValues() {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, strconv.Itoa(e.Summary))
		rows = append(rows, row)
	}
	m.entryTable.SetRows(rows)
}

func (m *UIModel) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *UIModel) saveUIState() {
	if m.state == nil {
		return
	}
	m.state.LastPage = int(m.page)
	m.state.Save()
}

func (m UIModel) View() string {
	if m.page == pageTable {
		return m.viewTable()
	}
	return m.viewForm()
}

func (m UIModel) viewForm() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("altmood — new entry") + "\n\n")

	b.WriteString(m.fieldLabel(focusDate, "date") + m.dateInput.View() + "\n")
	b.WriteString(m.fieldLabel(focusTime, "time") + m.timeInput.View() + "\n\n")

	for i, f := range ScaleFields {
		b.WriteString(m.fieldLabel(focusScales+i, f.Name) + renderSlider(m.scales[i]) + "\n")
	}

	b.WriteString("\n" + LabelStyle.Render(pad("summary")) + SummaryStyle.Render(strconv.Itoa(m.summary)) + "\n")

	b.WriteString("\n" + m.statusLine())
	b.WriteString(HelpStyle.Render("↑/↓: field  ←/→: adjust  enter: save  tab: entries  esc: quit"))

	return FrameStyle.Render(b.String())
}

func (m UIModel) viewTable() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("altmood — entries") + "\n\n")
	b.WriteString(m.entryTable.View() + "\n\n")

	if m.confirmDelete {
		b.WriteString(ConfirmStyle.Render("delete selected entry? [y/n]") + "\n")
	} else {
		b.WriteString(m.statusLine())
	}
	b.WriteString(HelpStyle.Render("↑/↓: move  d: delete  r: refresh  tab: form  q: quit"))

	return FrameStyle.Render(b.String())
}

func (m UIModel) statusLine() string {
	if m.status == "" {
		return "\n"
	}
	if m.statusErr {
		return StatusErrStyle.Render("✗ "+m.status) + "\n"
	}
	return StatusOKStyle.Render("✓ "+m.status) + "\n"
}

func (m UIModel) fieldLabel(focus int, name string) string {
	if m.focus == focus {
		return LabelFocusStyle.Render(pad("› " + name))
	}
	return LabelStyle.Render(pad("  " + name))
}

func pad(s string) string {
	return fmt.Sprintf("%-14s", s)
}

func renderSlider(v int) string {
	fill := SliderFillStyle.Render(strings.Repeat("■", v))
	empty := SliderEmptyStyle.Render(strings.Repeat("·", ScaleMax-v))
	return lipgloss.JoinHorizontal(lipgloss.Top, "[", fill, empty, "] ", strconv.Itoa(v))
}

// RunUI starts the interactive session.
func RunUI(repo *Repo, cfg *Config, state *UIState) error {
	p := tea.NewProgram(NewUIModel(repo, cfg, state), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
