package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/habitgenius/habitgenius/internal/advisor"
)

type AskCmd struct {
	Question string `arg:"" optional:"" help:"Free-text question for the habit assistant."`
	Habit    string `help:"Habit id to attach the exchange to." default:""`
	Image    string `help:"Path to an image to include with the question." type:"existingfile" default:""`
}

func (c *AskCmd) Run(ctx *Context) error {
	var habitID *string
	if c.Habit != "" {
		habitID = &c.Habit
	}

	var question *string
	if c.Question != "" {
		question = &c.Question
	}

	var image *string
	if c.Image != "" {
		data, err := os.ReadFile(c.Image)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		encoded := base64.StdEncoding.EncodeToString(data)
		image = &encoded
	}

	answer, err := advisor.New(ctx.Store).Ask(habitID, question, image)
	if err != nil {
		return err
	}

	fmt.Println(answer)
	return nil
}
