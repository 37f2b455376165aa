package components

import (
	"fmt"
	"path/filepath"

	"charm.land/lipgloss/v2"

	"github.com/kc3lf/hamdrill/internal/bank"
	"github.com/kc3lf/hamdrill/internal/ui/theme"
)

// RenderQuestionMeta renders the id line above a question: number,
// chapter, and internal code, skipping fields the record lacks.
func RenderQuestionMeta(q bank.Question) string {
	meta := fmt.Sprintf("  %s", q.DisplayID)
	if q.ChapterID != "" {
		meta += fmt.Sprintf("  ·  chapter %s", q.ChapterID)
	}
	if q.InternalID != "" {
		meta += fmt.Sprintf("  ·  %s", q.InternalID)
	}
	return theme.Meta.Render(meta)
}

// RenderQuestionBody renders the question text wrapped to width.
func RenderQuestionBody(q bank.Question, width int) string {
	return theme.Body.
		Width(width - 4).
		PaddingLeft(2).
		Render(q.Text)
}

// RenderFigureNote renders a one-line pointer to the question's figure.
// Image drawing itself is up to the terminal user; we only name the file.
func RenderFigureNote(q bank.Question) string {
	if q.ImagePath == "" {
		return ""
	}
	return theme.Figure.Render(fmt.Sprintf("  figure: %s", filepath.Base(q.ImagePath))) + "\n" +
		theme.Dimmed.Render(fmt.Sprintf("  (%s)", q.ImagePath))
}

// RenderPosition renders the "question N of M" progress line.
func RenderPosition(pos, total, width int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(width).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%d / %d  ", pos, total))
}
