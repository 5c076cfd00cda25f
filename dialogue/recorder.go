package dialogue

// Recorder is an in-memory Presenter that keeps every call, for headless runs and tests.
type Recorder struct {
	Prompts   []Prompt
	Resets    int
	Locations []LocationContent
	Open      bool
	pending   []Event
}

func (r *Recorder) ShowPrompt(p Prompt) {
	r.Prompts = append(r.Prompts, p)
}

func (r *Recorder) ResetPrompt() {
	r.Resets++
}

func (r *Recorder) ShowLocation(c LocationContent) {
	r.Locations = append(r.Locations, c)
	r.Open = true
}

func (r *Recorder) LocationOpen() bool {
	return r.Open
}

// Push queues an event as if the user had acted.
func (r *Recorder) Push(kind EventKind) {
	if kind == EventClose {
		r.Open = false
	}
	r.pending = append(r.pending, Event{Kind: kind})
}

func (r *Recorder) Events() []Event {
	events := r.pending
	r.pending = nil
	return events
}

// LastPrompt returns the most recent prompt, if any.
func (r *Recorder) LastPrompt() (Prompt, bool) {
	if len(r.Prompts) == 0 {
		return Prompt{}, false
	}
	return r.Prompts[len(r.Prompts)-1], true
}
