package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gospace/internal/tui"
)

func main() {
	if os.Getenv("GOSPACE_DEBUG") != "" {
		f, err := tea.LogToFile("gospace-debug.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}
	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(os.Args[1])
	} else {
		m = tui.New()
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
