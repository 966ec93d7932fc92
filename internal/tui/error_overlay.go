package tui

type errorOverlayModel struct {
	message string
}

func (m errorOverlayModel) View() string {
	body := "Error\n\n" + m.message + "\n\n"
	body += helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(body)
}
