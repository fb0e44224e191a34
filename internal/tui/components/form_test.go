package components

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeText(f Form, s string) Form {
	m, _ := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m.(Form)
}

func sendKey(f Form, k tea.KeyType) (Form, tea.Cmd) {
	m, cmd := f.Update(tea.KeyMsg{Type: k})
	return m.(Form), cmd
}

func TestForm_SubmitCollectsValuesByKey(t *testing.T) {
	f := NewForm("Settings",
		NewTextField("addr", "Address", ":3001").WithValue(":3001"),
		NewTextField("origin", "Origin", "*"),
	)
	f.Init()

	f, _ = sendKey(f, tea.KeyEnter)
	f = typeText(f, "http://localhost")
	f, cmd := sendKey(f, tea.KeyEnter)

	require.True(t, f.Submitted())
	assert.NotNil(t, cmd)
	assert.Equal(t, map[string]string{"addr": ":3001", "origin": "http://localhost"}, f.Values())
}

func TestForm_RequiredFieldBlocksAdvance(t *testing.T) {
	f := NewForm("Settings",
		NewTextField("a", "A", "").WithRequired(true),
		NewTextField("b", "B", ""),
	)
	f.Init()

	f, _ = sendKey(f, tea.KeyTab)
	assert.Equal(t, 0, f.focusIdx)
	assert.Contains(t, f.View(), ErrFieldRequired.Error())

	f = typeText(f, "x")
	f, _ = sendKey(f, tea.KeyTab)
	assert.Equal(t, 1, f.focusIdx)

	f, _ = sendKey(f, tea.KeyShiftTab)
	assert.Equal(t, 0, f.focusIdx)
}

func TestForm_ValidatorRejectsSubmit(t *testing.T) {
	f := NewForm("Settings",
		NewTextField("n", "Number", "").WithValue("abc").WithValidator(func(s string) error {
			if s != "42" {
				return errors.New("must be 42")
			}
			return nil
		}),
	)
	f.Init()

	f, _ = sendKey(f, tea.KeyEnter)
	assert.False(t, f.Submitted())
	assert.Contains(t, f.View(), "must be 42")
}

func TestForm_Cancel(t *testing.T) {
	f := NewForm("Settings", NewTextField("a", "A", ""))

	f, cmd := sendKey(f, tea.KeyEsc)
	assert.True(t, f.Cancelled())
	assert.False(t, f.Submitted())
	assert.NotNil(t, cmd)
}
