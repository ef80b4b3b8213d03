package wizard

// StepState is how a step renders in the progress indicator.
type StepState string

const (
	StateCompleted StepState = "completed"
	StateCurrent   StepState = "current"
	StateUpcoming  StepState = "upcoming"
)

// StepProgress is one entry of the indicator. ConnectorDone describes the
// connector drawn after the step and is false on the last entry.
type StepProgress struct {
	Step
	Number        int       `json:"number"`
	State         StepState `json:"state"`
	ConnectorDone bool      `json:"connectorDone"`
}

type ProgressView struct {
	Steps        []StepProgress `json:"steps"`
	CurrentIndex int            `json:"currentIndex"`
	Current      Step           `json:"current"`
	Percent      int            `json:"percent"`
}

// Progress derives the indicator from the step list, the current step and the
// completed ids. A completed step stays completed even when it is current again.
func Progress(steps []Step, current StepID, completed []StepID) ProgressView {
	done := make(map[StepID]bool, len(completed))
	for _, id := range completed {
		done[id] = true
	}
	idx := indexOf(steps, current)
	view := ProgressView{
		Steps:        make([]StepProgress, len(steps)),
		CurrentIndex: idx,
	}
	if idx >= 0 {
		view.Current = steps[idx]
	}
	for i, s := range steps {
		p := StepProgress{Step: s, Number: i + 1, State: StateUpcoming}
		switch {
		case done[s.ID]:
			p.State = StateCompleted
		case i == idx:
			p.State = StateCurrent
		}
		if i < len(steps)-1 {
			p.ConnectorDone = i < idx || done[s.ID]
		}
		view.Steps[i] = p
	}
	if len(steps) > 0 && idx >= 0 {
		view.Percent = (idx + 1) * 100 / len(steps)
	}
	return view
}
