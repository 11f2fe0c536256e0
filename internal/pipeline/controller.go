package pipeline

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lokmansalikoon/Two-Sentence-Horror-Generator/internal/models"
)

// Controller owns the scene list and mutates it in response to gateway
// outcomes and user edits. Methods are not safe for concurrent use: the
// caller runs one operation at a time (the UI locks the form while a run
// is in flight) on whichever goroutine it chooses.
type Controller struct {
	gen    Generator
	notify UpdateFunc
	log    zerolog.Logger

	scenes []*models.Scene
}

// New creates a controller. notify may be nil.
func New(gen Generator, notify UpdateFunc, logger zerolog.Logger) *Controller {
	return &Controller{
		gen:    gen,
		notify: notify,
		log:    logger.With().Str("component", "pipeline").Logger(),
	}
}

// Scenes returns a snapshot of the current scene list
func (c *Controller) Scenes() []*models.Scene {
	return models.CloneAll(c.scenes)
}

// emit pushes a snapshot to the UI
func (c *Controller) emit() {
	if c.notify != nil {
		c.notify(models.CloneAll(c.scenes))
	}
}

// Run validates the two sentences, replaces any prior batch with two
// fresh scenes, and processes them strictly in order. Scene k+1 is never
// started before scene k completes; the first failure halts the run and
// leaves later scenes at whatever status they last had.
func (c *Controller) Run(ctx context.Context, sentence1, sentence2 string, opts RunOptions) error {
	sentence1 = strings.TrimSpace(sentence1)
	sentence2 = strings.TrimSpace(sentence2)
	if sentence1 == "" || sentence2 == "" {
		return ErrMissingSentences
	}

	runID := uuid.NewString()
	log := c.log.With().Str("run_id", runID).Logger()
	log.Info().Str("style", opts.Style).Str("aspect_ratio", opts.AspectRatio).Msg("run started")

	c.scenes = models.NewScenes(sentence1, sentence2)
	c.emit()

	for _, scene := range c.scenes {
		if err := c.produce(ctx, scene, opts); err != nil {
			log.Error().Err(err).Int("scene", scene.ID).Msg("run halted")
			return err
		}
	}

	log.Info().Msg("run completed")
	return nil
}

// produce runs one scene through expansion and image synthesis
func (c *Controller) produce(ctx context.Context, scene *models.Scene, opts RunOptions) error {
	scene.Status = models.StatusExpanding
	scene.ErrMessage = ""
	c.emit()

	if err := c.expand(ctx, scene, opts.Style); err != nil {
		c.fail(scene, err)
		return err
	}

	scene.Status = models.StatusSynthesizing
	c.emit()

	asset, err := c.gen.GenerateImage(ctx, scene.ExpandedPrompt, opts.AspectRatio, opts.Style)
	if err != nil {
		c.fail(scene, err)
		return err
	}

	scene.Image = asset
	scene.Status = models.StatusCompleted
	c.emit()
	return nil
}

// expand streams the expanded prompt into the scene, emitting an update
// for every fragment in receipt order
func (c *Controller) expand(ctx context.Context, scene *models.Scene, style string) error {
	stream, err := c.gen.ExpandPrompt(ctx, scene.OriginalSentence, style)
	if err != nil {
		return err
	}
	defer stream.Close()

	scene.ExpandedPrompt = ""
	for {
		delta, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		scene.ExpandedPrompt += delta
		c.emit()
	}

	if strings.TrimSpace(scene.ExpandedPrompt) == "" {
		return ErrEmptyExpansion
	}
	return nil
}

// RegenerateImage re-runs only the synthesis stage for one scene. It is
// a no-op when the scene is unknown or has no expanded prompt yet. A
// failure stays scene-level: other scenes are untouched.
func (c *Controller) RegenerateImage(ctx context.Context, sceneID int, opts RunOptions) error {
	scene := models.FindByID(c.scenes, sceneID)
	if scene == nil || strings.TrimSpace(scene.ExpandedPrompt) == "" {
		return nil
	}

	scene.Status = models.StatusSynthesizing
	scene.ErrMessage = ""
	c.emit()

	asset, err := c.gen.GenerateImage(ctx, scene.ExpandedPrompt, opts.AspectRatio, opts.Style)
	if err != nil {
		c.fail(scene, err)
		return err
	}

	// Replace, never accumulate
	scene.Image = asset
	scene.Status = models.StatusCompleted
	c.emit()

	c.log.Info().Int("scene", sceneID).Msg("image regenerated")
	return nil
}

// RefineImage applies a nudge instruction to the scene's image. It is a
// no-op when there is no image yet or the instruction is blank. On
// success the asset is replaced and the instruction cleared; on failure
// the existing asset is kept.
func (c *Controller) RefineImage(ctx context.Context, sceneID int, instruction string, opts RunOptions) error {
	instruction = strings.TrimSpace(instruction)

	scene := models.FindByID(c.scenes, sceneID)
	if scene == nil || scene.Image == nil || instruction == "" {
		return nil
	}

	scene.NudgePrompt = instruction
	scene.Status = models.StatusRefining
	scene.ErrMessage = ""
	c.emit()

	asset, err := c.gen.EditImage(ctx, scene.Image, instruction, opts.Style)
	if err != nil {
		c.fail(scene, err)
		return err
	}

	scene.Image = asset
	scene.NudgePrompt = ""
	scene.Status = models.StatusCompleted
	c.emit()

	c.log.Info().Int("scene", sceneID).Msg("image refined")
	return nil
}

// GenerateVideo synthesizes a video clip from the scene's expanded
// prompt. It is a no-op when the scene has no expanded prompt.
func (c *Controller) GenerateVideo(ctx context.Context, sceneID int, opts RunOptions) error {
	scene := models.FindByID(c.scenes, sceneID)
	if scene == nil || strings.TrimSpace(scene.ExpandedPrompt) == "" {
		return nil
	}

	scene.Status = models.StatusSynthesizing
	scene.ErrMessage = ""
	c.emit()

	asset, err := c.gen.GenerateVideo(ctx, scene.ExpandedPrompt, opts.AspectRatio)
	if err != nil {
		c.fail(scene, err)
		return err
	}

	scene.Video = asset
	scene.Status = models.StatusCompleted
	c.emit()

	c.log.Info().Int("scene", sceneID).Msg("video generated")
	return nil
}

// SetExpandedPrompt applies a user edit to a scene's expanded prompt.
// Edits are ignored while a stage is running for the scene.
func (c *Controller) SetExpandedPrompt(sceneID int, text string) {
	scene := models.FindByID(c.scenes, sceneID)
	if scene == nil || scene.InProgress() {
		return
	}
	scene.ExpandedPrompt = text
	c.emit()
}

// SetNudgePrompt stores the user's pending nudge instruction on a scene
func (c *Controller) SetNudgePrompt(sceneID int, text string) {
	scene := models.FindByID(c.scenes, sceneID)
	if scene == nil {
		return
	}
	scene.NudgePrompt = text
	c.emit()
}

// fail records a stage failure on the scene
func (c *Controller) fail(scene *models.Scene, err error) {
	scene.SetError(errMessage(err))
	c.emit()
}

// errMessage extracts a user-facing message from a stage error
func errMessage(err error) string {
	if err == nil || err.Error() == "" {
		return "Production halted due to an internal error."
	}
	return err.Error()
}
