package notifysvc

import (
	"fmt"
	"io"
	"sync"

	"github.com/trezcool/schoolhub/core"
)

type consoleService struct {
	out    io.Writer
	errOut io.Writer
	prefix string
}

var _ core.Notifier = (*consoleService)(nil)

// NewConsoleService writes success notifications to out and errors to errOut.
func NewConsoleService(out, errOut io.Writer, appName string) core.Notifier {
	return &consoleService{out: out, errOut: errOut, prefix: "[" + appName + "] "}
}

func (svc consoleService) Notify(n core.Notification) {
	w := svc.out
	if n.Level == core.LevelError {
		w = svc.errOut
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", svc.prefix, n.Title, n.Description)
}

// Recorder keeps every notification in memory. Used in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []core.Notification
}

var _ core.Notifier = (*Recorder)(nil)

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Notify(n core.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []core.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]core.Notification(nil), r.sent...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (core.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		return core.Notification{}, false
	}
	return r.sent[len(r.sent)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
