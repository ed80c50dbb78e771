package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/seedpad/seedpad-terminal/pkg/export"
	"github.com/seedpad/seedpad-terminal/pkg/log"
	"github.com/seedpad/seedpad-terminal/pkg/models"
	"github.com/seedpad/seedpad-terminal/pkg/notify"
	"github.com/seedpad/seedpad-terminal/pkg/session"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

type focusArea int

const (
	focusPhrase focusArea = iota
	focusRecords
)

// dualMinWidth is the narrowest terminal that shows two panels side by side
const dualMinWidth = 130

// Options wires the app to its collaborators
type Options struct {
	Settings  *models.Settings
	Store     store.RecordStore
	DeviceIDs session.DeviceIDs
	Clipboard Clipboard
	Logger    *log.Logger
	Now       func() time.Time
}

type App struct {
	settings  *models.Settings
	store     store.RecordStore
	deviceIDs session.DeviceIDs
	clipboard Clipboard
	logger    *log.Logger
	now       func() time.Time

	session *session.Session
	notices *notify.Channel
	dialog  *ConfirmationModel
	keys    keyMap

	panels  []*PhrasePanel
	active  int
	focus   focusArea
	records recordList

	exportOpts export.Options

	copying   bool
	pasting   bool
	exporting bool

	width  int
	height int
}

func NewApp(opts Options) *App {
	settings := opts.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	a := &App{
		settings:  settings,
		store:     opts.Store,
		deviceIDs: opts.DeviceIDs,
		clipboard: opts.Clipboard,
		logger:    logger,
		now:       now,
		session:   session.New(),
		notices:   notify.NewChannel(time.Duration(settings.UI.NoticeMillis) * time.Millisecond),
		dialog:    NewConfirmation(),
		keys:      defaultKeyMap(),
		exportOpts: export.Options{
			Size:  settings.Export.Size,
			Level: settings.Export.Level,
		},
	}

	if settings.UI.Dual {
		a.panels = []*PhrasePanel{NewPhrasePanel("Phrase 1"), NewPhrasePanel("Phrase 2")}
	} else {
		a.panels = []*PhrasePanel{NewPhrasePanel("Recovery phrase")}
	}
	return a
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.panel().Focus(), a.refresh())
}

// panel returns the active phrase panel
func (a *App) panel() *PhrasePanel {
	return a.panels[a.active]
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case notify.DismissMsg:
		a.notices.Dismiss(msg)
		return a, nil

	case planDoneMsg:
		return a, a.handlePlanDone(msg.result)

	case listDoneMsg:
		return a, a.handleListDone(msg.result)

	case copyDoneMsg:
		return a, a.handleCopyDone(msg)

	case copyResetMsg:
		if msg.panel < len(a.panels) && a.panels[msg.panel].copySeq == msg.seq {
			a.panels[msg.panel].phrase.Copied = false
		}
		return a, nil

	case clipboardReadMsg:
		a.pasting = false
		if msg.err != nil {
			a.logger.Warn("clipboard read failed", "error", msg.err)
			return a, a.notices.Notify("Failed to read clipboard", notify.Error)
		}
		if msg.panel < len(a.panels) {
			a.panels[msg.panel].Paste(msg.text)
		}
		return a, nil

	case exportDoneMsg:
		a.exporting = false
		if msg.err != nil {
			a.logger.Error("qr export failed", "error", msg.err)
			return a, a.notices.Notify("Failed to export QR code", notify.Error)
		}
		a.logger.Info("qr exported", "path", msg.path)
		return a, a.notices.Notify("QR saved to "+msg.path, notify.Success)
	}

	// Cursor blink and other input internals
	var cmd tea.Cmd
	p := a.panel()
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, a.keys.Quit) {
		return tea.Quit
	}

	if a.dialog.Active() {
		return a.dialog.Update(msg)
	}

	switch {
	case key.Matches(msg, a.keys.Save):
		return a.save()
	case key.Matches(msg, a.keys.Delete):
		return a.delete()
	case key.Matches(msg, a.keys.Copy):
		return a.copy()
	case key.Matches(msg, a.keys.Paste):
		return a.pasteFromClipboard()
	case key.Matches(msg, a.keys.QR):
		return a.generateQR()
	case key.Matches(msg, a.keys.Export):
		return a.exportQR()
	case key.Matches(msg, a.keys.ClearQR):
		a.panel().phrase.QR = nil
		return nil
	case key.Matches(msg, a.keys.ClearAll):
		return a.clearAll()
	case key.Matches(msg, a.keys.Refresh):
		if a.session.Refreshing() {
			return nil
		}
		return a.refresh()
	case key.Matches(msg, a.keys.Switch):
		return a.switchPanel()
	}

	if a.focus == focusRecords {
		return a.handleRecordsKey(msg)
	}

	if key.Matches(msg, a.keys.Records) && a.settings.UI.ShowRecords {
		a.focus = focusRecords
		a.panel().Blur()
		a.records.clamp(len(a.session.Records()))
		return nil
	}

	// Bracketed terminal paste
	if msg.Paste {
		a.panel().Paste(string(msg.Runes))
		return nil
	}
	return a.panel().Update(msg)
}

func (a *App) handleRecordsKey(msg tea.KeyMsg) tea.Cmd {
	records := a.session.Records()
	switch {
	case key.Matches(msg, a.keys.Up):
		a.records.up()
	case key.Matches(msg, a.keys.Down):
		a.records.down(len(records))
	case key.Matches(msg, a.keys.Load):
		r, ok := a.records.current(records)
		if !ok {
			return nil
		}
		return a.load(r.ID)
	case key.Matches(msg, a.keys.Back):
		a.focus = focusPhrase
		return a.panel().Focus()
	}
	return nil
}

// load selects a record and copies its words into the active panel
func (a *App) load(id string) tea.Cmd {
	r, ok := a.session.Select(id)
	if !ok {
		return nil
	}
	a.focus = focusPhrase
	p := a.panel()
	return tea.Batch(
		p.Focus(),
		p.Load(r.ID, r.Words),
		a.notices.Notify("Loaded "+r.Name, notify.Info),
	)
}

func (a *App) save() tea.Cmd {
	plan := a.session.RequestSave(a.panel().phrase.Slots())
	if a.session.State() == session.AwaitingChoice {
		a.showSaveChoice()
		return nil
	}
	return a.run(plan)
}

func (a *App) showSaveChoice() {
	name := "the loaded wallet"
	if r, ok := a.session.SelectedRecord(); ok {
		name = r.Name
	}
	id, _ := a.session.Selected()
	p := a.panel()

	message := fmt.Sprintf("This phrase was loaded from %s. Update it, or save a new wallet?", name)
	if p.loadedID != id {
		if owner := a.loadedIn(id); owner != nil {
			message = fmt.Sprintf("%s is loaded in %s. Overwrite it with the words in %s, or save a new wallet?",
				name, owner.title, p.title)
		} else {
			message = fmt.Sprintf("%s is selected. Overwrite it with these words, or save a new wallet?", name)
		}
	}
	choose := func(c session.Choice) func() tea.Cmd {
		return func() tea.Cmd { return a.run(a.session.Choose(c)) }
	}
	a.dialog.Show(ConfirmationConfig{
		Title:   "Save Phrase",
		Message: message,
		Options: []ConfirmOption{
			{Keys: []string{"u", "U"}, Label: "Update Current", Color: ColorWarning, Action: choose(session.UpdateCurrent)},
			{Keys: []string{"n", "N"}, Label: "Save New", Color: ColorSuccess, Action: choose(session.SaveNew)},
		},
	}, choose(session.Cancel))
}

// loadedIn returns the panel holding the words of record id
func (a *App) loadedIn(id string) *PhrasePanel {
	for _, p := range a.panels {
		if p.loadedID == id {
			return p
		}
	}
	return nil
}

func (a *App) delete() tea.Cmd {
	plan := a.session.RequestDelete()
	if a.session.State() == session.AwaitingDeleteConfirm {
		a.showDeleteConfirm()
		return nil
	}
	return a.run(plan)
}

func (a *App) showDeleteConfirm() {
	name := "the selected wallet"
	if r, ok := a.session.SelectedRecord(); ok {
		name = r.Name
	}
	confirm := func(yes bool) func() tea.Cmd {
		return func() tea.Cmd { return a.run(a.session.ConfirmDelete(yes)) }
	}
	a.dialog.Show(ConfirmationConfig{
		Title:   "Delete Wallet",
		Message: fmt.Sprintf("Delete %s?", name),
		Warning: "This cannot be undone.",
		Options: []ConfirmOption{
			{Keys: []string{"y", "Y"}, Label: "Delete", Color: ColorDanger, Action: confirm(true)},
			{Keys: []string{"n", "N"}, Label: "Keep", Color: ColorSuccess, Action: confirm(false)},
		},
	}, confirm(false))
}

// run hands a plan to the store off the loop, or shows why it was refused
func (a *App) run(p session.Plan) tea.Cmd {
	if !p.Calls() {
		return a.notices.Show(p.Notice)
	}
	a.logger.Debug("store call", "op", p.Op.String(), "id", p.ID, "name", p.Name)
	return executeCmd(a.store, a.deviceIDs, p)
}

func (a *App) handlePlanDone(r session.Result) tea.Cmd {
	if r.Err != nil {
		a.logger.Error("store call failed", "op", r.Plan.Op.String(), "id", r.Plan.ID, "error", r.Err)
	} else {
		a.logger.Info("store call done", "op", r.Plan.Op.String(), "id", r.Plan.ID, "name", r.Plan.Name)
	}

	n, refresh := a.session.Complete(r)
	cmds := []tea.Cmd{a.notices.Show(n)}
	if refresh {
		cmds = append(cmds, a.refresh())
	}
	return tea.Batch(cmds...)
}

func (a *App) refresh() tea.Cmd {
	return fetchCmd(a.store, a.session.BeginRefresh())
}

func (a *App) handleListDone(r session.ListResult) tea.Cmd {
	n, applied := a.session.ApplyList(r)
	if !applied {
		a.logger.Debug("stale wallet list discarded", "token", r.Token)
		return nil
	}
	if r.Err != nil {
		a.logger.Error("wallet list failed", "error", r.Err)
	}
	a.records.clamp(len(a.session.Records()))
	return a.notices.Show(n)
}

func (a *App) copy() tea.Cmd {
	p := a.panel()
	if !p.phrase.IsComplete() || p.phrase.Copied || a.copying {
		return nil
	}
	if a.clipboard == nil {
		return a.notices.Notify("Clipboard unavailable", notify.Error)
	}
	a.copying = true
	return copyCmd(a.clipboard, a.active, p.phrase.String())
}

func (a *App) handleCopyDone(msg copyDoneMsg) tea.Cmd {
	a.copying = false
	if msg.err != nil {
		a.logger.Warn("clipboard write failed", "error", msg.err)
		return a.notices.Notify("Failed to copy to clipboard", notify.Error)
	}
	if msg.panel >= len(a.panels) {
		return nil
	}
	p := a.panels[msg.panel]
	// Edited while the copy ran: the flag would describe other words
	if p.phrase.String() != msg.text {
		return nil
	}
	p.phrase.Copied = true
	p.copySeq++
	return tea.Batch(
		a.notices.Notify("Phrase copied to clipboard", notify.Success),
		copyResetCmd(a.notices.Duration, msg.panel, p.copySeq),
	)
}

func (a *App) pasteFromClipboard() tea.Cmd {
	if a.pasting {
		return nil
	}
	if a.clipboard == nil {
		return a.notices.Notify("Clipboard unavailable", notify.Error)
	}
	a.pasting = true
	return readClipboardCmd(a.clipboard, a.active)
}

func (a *App) generateQR() tea.Cmd {
	p := a.panel()
	if !p.phrase.IsComplete() {
		return nil
	}
	img, err := export.Render(p.phrase.String(), a.exportOpts)
	if err != nil {
		a.logger.Error("qr render failed", "error", err)
		return a.notices.Notify("Failed to generate QR code", notify.Error)
	}
	p.phrase.QR = img
	return a.notices.Notify("QR code generated", notify.Success)
}

func (a *App) exportQR() tea.Cmd {
	p := a.panel()
	if p.phrase.QR == nil || a.exporting {
		return nil
	}
	a.exporting = true
	return exportCmd(a.settings.Export.Dir, p.phrase.QR.PNG, a.now())
}

func (a *App) clearAll() tea.Cmd {
	p := a.panel()
	if p.phrase.IsPristine() {
		return nil
	}
	a.session.ClearSelection()
	return p.Clear()
}

func (a *App) switchPanel() tea.Cmd {
	if len(a.panels) < 2 {
		return nil
	}
	a.panel().Blur()
	a.active = (a.active + 1) % len(a.panels)
	if a.focus == focusRecords {
		return nil
	}
	return a.panel().Focus()
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	subtitle := "Enter, store and export a 12-word recovery phrase"
	if r, ok := a.session.SelectedRecord(); ok {
		subtitle = "Editing " + r.Name
	}
	sections := []string{renderHeader(a.width, "Seed Phrase Manager", subtitle, !a.settings.UI.HideSecurityBanner)}

	if a.dialog.Active() {
		sections = append(sections, lipgloss.Place(a.width, a.bodyHeight(sections[0]), lipgloss.Center, lipgloss.Center, a.dialog.View()))
	} else {
		sections = append(sections, a.renderPanels())
		if a.settings.UI.ShowRecords {
			selected, _ := a.session.Selected()
			sections = append(sections, a.records.view(
				a.session.Records(), selected, a.focus == focusRecords, a.session.Refreshing(), a.width, 8))
		}
	}

	sections = append(sections, a.renderHelp(), a.renderStatus())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) bodyHeight(header string) int {
	h := a.height - lipgloss.Height(header) - 2
	if h < 10 {
		h = 10
	}
	return h
}

func (a *App) renderPanels() string {
	if len(a.panels) == 1 {
		return a.panels[0].View(a.width, a.focus == focusPhrase)
	}

	views := make([]string, len(a.panels))
	sideBySide := a.width >= dualMinWidth
	for i, p := range a.panels {
		w := a.width
		if sideBySide {
			w = a.width / len(a.panels)
		}
		views[i] = p.View(w, i == a.active && a.focus == focusPhrase)
	}
	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// renderHelp lists the bindings, dimming the ones the current state disables
func (a *App) renderHelp() string {
	p := a.panel()
	complete := p.phrase.IsComplete()
	_, selected := a.session.Selected()

	type hint struct {
		b       key.Binding
		enabled bool
	}
	hints := []hint{
		{a.keys.Save, !p.phrase.IsPristine() && !a.session.Saving()},
		{a.keys.Delete, selected && !a.session.Busy(session.OpDelete)},
		{a.keys.Copy, complete && !p.phrase.Copied && !a.copying},
		{a.keys.Paste, !a.pasting},
		{a.keys.QR, complete},
		{a.keys.Export, p.phrase.QR != nil && !a.exporting},
		{a.keys.ClearQR, p.phrase.QR != nil},
		{a.keys.ClearAll, !p.phrase.IsPristine()},
		{a.keys.Refresh, !a.session.Refreshing()},
	}
	if a.settings.UI.ShowRecords {
		hints = append(hints, hint{a.keys.Records, true})
	}
	if len(a.panels) > 1 {
		hints = append(hints, hint{a.keys.Switch, true})
	}
	hints = append(hints, hint{a.keys.Quit, true})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		text := h.b.Help().Key + " " + h.b.Help().Desc
		if h.enabled {
			parts = append(parts, NormalStyle.Render(text))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSelected)).Render(text))
		}
	}
	return lipgloss.NewStyle().PaddingLeft(1).Width(a.width).Render(strings.Join(parts, DimStyle.Render(" • ")))
}

func (a *App) renderStatus() string {
	n := a.notices.Current()
	if n == nil {
		return ""
	}
	color := ColorPrimary
	switch n.Variant {
	case notify.Success:
		color = ColorSuccess
	case notify.Error:
		color = ColorDanger
	}
	return statusStyle(color).Render(a.notices.Render())
}
