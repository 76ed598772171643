// SPDX-License-Identifier: MPL-2.0

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInputModel_TypeAndSubmit(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "Hostname", Placeholder: "nixbox"})
	var model tea.Model = m
	for _, r := range "web01" {
		model, _ = model.Update(keyMsg(string(r)))
	}
	model, _ = model.Update(keyMsg("enter"))

	im := model.(*inputModel)
	if !im.done {
		t.Fatal("model not done after enter")
	}
	if im.cancelled {
		t.Fatal("model cancelled, want submitted")
	}
	if im.result != "web01" {
		t.Errorf("result = %q, want web01", im.result)
	}
}

func TestInputModel_BlankSubmitKeepsCurrent(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "Hostname"})
	model, _ := m.Update(keyMsg("enter"))
	im := model.(*inputModel)
	if !im.done || im.result != "" {
		t.Errorf("blank submit: done=%v result=%q, want done with empty result", im.done, im.result)
	}
}

func TestInputModel_EscCancels(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "Hostname"})
	model, _ := m.Update(keyMsg("esc"))
	im := model.(*inputModel)
	if !im.cancelled {
		t.Error("esc did not cancel")
	}
}

func TestInputModel_ViewShowsTitleAndHint(t *testing.T) {
	t.Parallel()

	m := newInputModel(InputOptions{Title: "SSH port", Description: "integer between 1 and 65535"})
	view := m.View()
	if !strings.Contains(view, "SSH port") {
		t.Errorf("view missing title: %q", view)
	}
	if !strings.Contains(view, "integer between 1 and 65535") {
		t.Errorf("view missing description: %q", view)
	}
}

func TestChooseModel_SingleKeystrokeSelects(t *testing.T) {
	t.Parallel()

	m := newChooseModel(ChooseOptions{
		Title: "Installation settings",
		Items: []ChooseItem{
			{Key: "1", Label: "System"},
			{Key: "2", Label: "Network"},
			{Key: "X", Label: "Confirm configuration"},
		},
	})
	model, _ := m.Update(keyMsg("2"))
	cm := model.(*chooseModel)
	if !cm.done || cm.result != "2" {
		t.Errorf("done=%v result=%q, want selection 2", cm.done, cm.result)
	}
}

func TestChooseModel_ReturnsUnlistedKeyVerbatim(t *testing.T) {
	t.Parallel()

	// The caller decides validity and redisplays on unknown keys.
	m := newChooseModel(ChooseOptions{Items: []ChooseItem{{Key: "1", Label: "System"}}})
	model, _ := m.Update(keyMsg("z"))
	cm := model.(*chooseModel)
	if !cm.done || cm.result != "z" {
		t.Errorf("done=%v result=%q, want verbatim z", cm.done, cm.result)
	}
}

func TestChooseModel_EnterIgnored(t *testing.T) {
	t.Parallel()

	m := newChooseModel(ChooseOptions{Items: []ChooseItem{{Key: "1", Label: "System"}}})
	model, _ := m.Update(keyMsg("enter"))
	cm := model.(*chooseModel)
	if cm.done {
		t.Error("enter completed the chooser, want ignored")
	}
}

func TestChooseModel_ViewListsItems(t *testing.T) {
	t.Parallel()

	m := newChooseModel(ChooseOptions{
		Title: "Menu",
		Items: []ChooseItem{{Key: "1", Label: "System"}, {Key: "X", Label: "Confirm"}},
	})
	view := m.View()
	for _, want := range []string{"Menu", "System", "Confirm"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q: %q", want, view)
		}
	}
}

func TestConfirmModel_Answers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		def       bool
		key       string
		want      bool
		cancelled bool
	}{
		{"yes", false, "y", true, false},
		{"no", true, "n", false, false},
		{"enter keeps default true", true, "enter", true, false},
		{"enter keeps default false", false, "enter", false, false},
		{"esc cancels", false, "esc", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := newConfirmModel(ConfirmOptions{Title: "Overwrite?", Default: tt.def})
			model, _ := m.Update(keyMsg(tt.key))
			cm := model.(*confirmModel)
			if !cm.done {
				t.Fatal("model not done")
			}
			if cm.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", cm.cancelled, tt.cancelled)
			}
			if !tt.cancelled && cm.result != tt.want {
				t.Errorf("result = %v, want %v", cm.result, tt.want)
			}
		})
	}
}
