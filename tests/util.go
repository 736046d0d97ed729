package testutil

import (
	"io/ioutil"
	"log"

	"github.com/trezcool/schoolhub/core"
	"github.com/trezcool/schoolhub/core/resource"
	logsvc "github.com/trezcool/schoolhub/services/logger"
	notifysvc "github.com/trezcool/schoolhub/services/notify"
)

// NewDeps returns screen dependencies with a silent logger and a recording notifier.
func NewDeps() (resource.Deps, *notifysvc.Recorder) {
	rec := notifysvc.NewRecorder()
	return resource.Deps{
		Validator: core.NewValidator(),
		Notifier:  rec,
		Logger:    logsvc.NewStdLogger(log.New(ioutil.Discard, "", 0), false),
	}, rec
}

// Confirm answers every confirmation with answer and counts the prompts.
type Confirm struct {
	Answer  bool
	Prompts []string
}

func (c *Confirm) Confirm(prompt string) bool {
	c.Prompts = append(c.Prompts, prompt)
	return c.Answer
}

func StrPtr(s string) *string { return &s }
