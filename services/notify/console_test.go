package notifysvc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/schoolhub/core"
)

func TestConsoleService_Notify(t *testing.T) {
	var out, errOut bytes.Buffer
	svc := NewConsoleService(&out, &errOut, "SchoolHub")

	core.NotifySuccess(svc, "Fee setting created successfully")
	core.NotifyError(svc, "Failed to fetch fee settings")

	assert.Equal(t, "[SchoolHub] Success: Fee setting created successfully\n", out.String())
	assert.Equal(t, "[SchoolHub] Error: Failed to fetch fee settings\n", errOut.String())
}

func TestRecorder(t *testing.T) {
	rec := NewRecorder()
	_, ok := rec.Last()
	assert.False(t, ok)

	core.NotifySuccess(rec, "one")
	core.NotifyError(rec, "two")
	assert.Equal(t, []core.Notification{
		{Level: core.LevelSuccess, Title: "Success", Description: "one"},
		{Level: core.LevelError, Title: "Error", Description: "two"},
	}, rec.Sent())

	last, _ := rec.Last()
	assert.Equal(t, "two", last.Description)

	rec.Reset()
	assert.Empty(t, rec.Sent())
}
