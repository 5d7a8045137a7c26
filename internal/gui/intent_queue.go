package gui

import "github.com/appengine-ltd/age-of-polders/internal/parser"

// CommandSink accepts intents produced by hotkeys, clicks and the command
// line. They are executed once per frame, in order.
type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Saturated: a held key can outrun the frame rate.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

func (q *intentQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.ch)
}
