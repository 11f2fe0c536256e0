package components

import (
	"strings"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/tui/styles"
)

const stageCount = 3 // expand, synthesize, done

// RenderStageBar renders a scene's progress through the pipeline as a
// row of stage markers
func RenderStageBar(status models.SceneStatus) string {
	active := -1
	completed := -1

	switch status {
	case models.StatusExpanding:
		active = 0
	case models.StatusSynthesizing, models.StatusRefining:
		active = 1
		completed = 0
	case models.StatusCompleted:
		completed = stageCount - 1
	}

	var b strings.Builder
	for i := 0; i < stageCount; i++ {
		if i > 0 {
			b.WriteString(styles.StyleStatusIdle.Render("─"))
		}
		switch {
		case i <= completed:
			b.WriteString(styles.StyleStatusDone.Render("●"))
		case i == active:
			b.WriteString(styles.StyleStatusWorking.Render("◐"))
		default:
			b.WriteString(styles.StyleStatusIdle.Render("○"))
		}
	}

	return b.String()
}
