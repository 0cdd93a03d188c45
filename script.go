package frames

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string      `json:"action"`
	Label  string      `json:"label,omitempty"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
	From   Vec2        `json:"from,omitempty"`
	To     Vec2        `json:"to,omitempty"`
	Frames int         `json:"frames,omitempty"`
	Button MouseButton `json:"button,omitempty"`
	Delta  float64     `json:"delta,omitempty"`
	Key    Key         `json:"key,omitempty"`
}

// script is the top-level JSON structure of a script file.
type script struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"move": true, "drag": true, "click": true, "wheel": true,
	"key": true, "wait": true, "screenshot": true,
}

// ScriptRunner sequences injected input and screenshots across ticks so a
// sketch can be driven without a user. Attach it with Scene.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script of the form {"steps": [...]}.
func LoadScript(data []byte) (*ScriptRunner, error) {
	var sc script
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: sc.Steps}, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load script: %w", err)
	}
	r, err := LoadScript(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// SetScriptRunner attaches r to the scene. It is stepped from Update before
// injected input is consumed.
func (s *Scene) SetScriptRunner(r *ScriptRunner) {
	s.runner = r
}

// Scripted reports whether synthetic input is driving the scene: a script
// is still running or injected events are queued. Backends skip real input
// while it is true.
func (s *Scene) Scripted() bool {
	return len(s.injectQueue) > 0 || (s.runner != nil && !s.runner.done)
}

// Done reports whether every step has been executed and its input consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Len returns the number of steps.
func (r *ScriptRunner) Len() int {
	return len(r.steps)
}

// step advances the runner by one tick.
func (r *ScriptRunner) step(s *Scene) {
	if r.done {
		return
	}
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		s.Screenshot(st.Label)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y, st.Button)
	case "drag":
		s.InjectDrag(st.From, st.To, st.Frames, st.Button)
	case "wheel":
		s.InjectWheel(st.Delta)
	case "key":
		s.InjectKey(st.Key)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	}
	s.log.Debug("script step", "index", r.cursor-1, "action", st.Action)

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
