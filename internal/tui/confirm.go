package tui

type confirmModel struct {
	message string
}

func (m confirmModel) View() string {
	body := "Delete \"" + m.message + "\"?\n\n"
	body += helpStyle.Render("y yes    n no")
	return overlayBoxStyle.Render(body)
}
