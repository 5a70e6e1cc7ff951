package cli

import tea "github.com/charmbracelet/bubbletea"

// viewStack is the navigation history. Index 0 is the dashboard, which is
// never popped.
type viewStack []View

func (s viewStack) top() View {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

func (s viewStack) push(v View) viewStack { return append(s, v) }

func (s viewStack) pop() viewStack {
	if len(s) <= 1 {
		return s
	}
	return s[:len(s)-1]
}

// send delivers msg to the top view only.
func (s viewStack) send(msg tea.Msg) tea.Cmd {
	if len(s) == 0 {
		return nil
	}
	next, cmd := s[len(s)-1].Update(msg)
	s[len(s)-1] = next.(View)
	return cmd
}

// broadcast delivers msg to every view, bottom first.
func (s viewStack) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s))
	for i := range s {
		next, cmd := s[i].Update(msg)
		s[i] = next.(View)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (s viewStack) crumbs() []string {
	var out []string
	for _, v := range s {
		if t := v.Title(); t != "" {
			out = append(out, t)
		}
	}
	return out
}
