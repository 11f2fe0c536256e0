package components

import (
	"fmt"
	"strings"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/styles"
)

// RenderSceneCard renders a single scene card
func RenderSceneCard(scene *models.Scene, selected bool, maxWidth int) string {
	cardWidth := maxWidth/2 - 4
	if cardWidth < 30 {
		cardWidth = 30
	}
	if cardWidth > 54 {
		cardWidth = 54
	}
	innerWidth := cardWidth - 4

	var b strings.Builder

	// Title row: scene number + status badge
	title := styles.StyleSceneTitle.Render(fmt.Sprintf("SCENE %02d", scene.ID))
	b.WriteString(title + "  " + renderStatusBadge(scene.Status))
	b.WriteString("\n")
	b.WriteString(RenderStageBar(scene.Status))
	b.WriteString("\n\n")

	// Source sentence
	b.WriteString(styles.StyleSceneSentence.Render(wrap(scene.OriginalSentence, innerWidth)))
	b.WriteString("\n")

	// Expanded prompt, truncated to a few lines
	if scene.ExpandedPrompt != "" {
		b.WriteString("\n")
		b.WriteString(styles.StylePrompt.Render(clip(scene.ExpandedPrompt, innerWidth, 4)))
		b.WriteString("\n")
	}

	// Asset indicators
	var assets []string
	if scene.Image != nil {
		assets = append(assets, styles.StyleSuccess.Render("▣ image"))
	}
	if scene.Video != nil {
		assets = append(assets, styles.StyleSuccess.Render("▶ video"))
	}
	if len(assets) > 0 {
		b.WriteString("\n" + strings.Join(assets, "  ") + "\n")
	}

	// Pending nudge instruction
	if scene.NudgePrompt != "" && scene.Status != models.StatusRefining {
		b.WriteString("\n" + styles.StyleTextMuted.Render("nudge: "+clip(scene.NudgePrompt, innerWidth-7, 1)) + "\n")
	}

	// Error message
	if scene.Status == models.StatusError && scene.ErrMessage != "" {
		b.WriteString("\n" + styles.StyleError.Render(wrap(scene.ErrMessage, innerWidth)) + "\n")
	}

	cardStyle := styles.StyleSceneCard
	if selected {
		cardStyle = styles.StyleSceneCardSelected
	}

	return cardStyle.Width(cardWidth).Render(strings.TrimRight(b.String(), "\n"))
}

func renderStatusBadge(status models.SceneStatus) string {
	label := strings.ToUpper(status.String())
	switch status {
	case models.StatusIdle:
		return styles.StyleStatusIdle.Render(label)
	case models.StatusCompleted:
		return styles.StyleStatusDone.Render(label)
	case models.StatusError:
		return styles.StyleStatusError.Render(label)
	default:
		return styles.StyleStatusWorking.Render(label)
	}
}

// wrap breaks text into lines no wider than width
func wrap(text string, width int) string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			line = word
		} else if len(line)+1+len(word) <= width {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// clip wraps text and keeps at most maxLines lines, marking truncation
func clip(text string, width, maxLines int) string {
	wrapped := strings.Split(wrap(text, width), "\n")
	if len(wrapped) <= maxLines {
		return strings.Join(wrapped, "\n")
	}
	wrapped = wrapped[:maxLines]
	wrapped[maxLines-1] += "…"
	return strings.Join(wrapped, "\n")
}
