package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/seedpad/seedpad-terminal/pkg/export"
	"github.com/seedpad/seedpad-terminal/pkg/session"
	"github.com/seedpad/seedpad-terminal/pkg/store"
)

// Messages delivered back to the loop by the commands below

type planDoneMsg struct {
	result session.Result
}

type listDoneMsg struct {
	result session.ListResult
}

type copyDoneMsg struct {
	panel int
	text  string
	err   error
}

type copyResetMsg struct {
	panel int
	seq   uint64
}

type clipboardReadMsg struct {
	panel int
	text  string
	err   error
}

type exportDoneMsg struct {
	path string
	err  error
}

func executeCmd(st store.RecordStore, ids session.DeviceIDs, p session.Plan) tea.Cmd {
	return func() tea.Msg {
		return planDoneMsg{result: session.Execute(context.Background(), st, ids, p)}
	}
}

func fetchCmd(st store.RecordStore, token uint64) tea.Cmd {
	return func() tea.Msg {
		return listDoneMsg{result: session.Fetch(context.Background(), st, token)}
	}
}

func copyCmd(cb Clipboard, panel int, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{panel: panel, text: text, err: cb.WriteAll(text)}
	}
}

func copyResetCmd(d time.Duration, panel int, seq uint64) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return copyResetMsg{panel: panel, seq: seq}
	})
}

func readClipboardCmd(cb Clipboard, panel int) tea.Cmd {
	return func() tea.Msg {
		text, err := cb.ReadAll()
		return clipboardReadMsg{panel: panel, text: text, err: err}
	}
}

func exportCmd(dir string, png []byte, now time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := export.WritePNG(dir, png, now)
		return exportDoneMsg{path: path, err: err}
	}
}
