package minforth

import (
	"bufio"
	"io"
	"os"
	"strings"

	"nickandperla.net/minforth/internal/eval"
	"nickandperla.net/minforth/internal/store"
)

// Runtime is the minforth interpreter runtime: one evaluator owning
// one dictionary and one value stack, optionally recording a session
// transcript to a history store.
type Runtime struct {
	evaluator *eval.Evaluator
	history   store.Store
	out       io.Writer

	capture   *strings.Builder // per-Eval output capture, single-threaded
	noPrelude bool
	prelude   string
	stackCap  int
	rlimit    int
}

// New creates a new minforth runtime with the given options.
func New(opts ...Option) *Runtime {
	r := &Runtime{}
	for _, opt := range opts {
		opt(r)
	}

	evalOpts := []eval.Option{
		eval.WithOutputWriter(r.write),
	}
	if r.stackCap > 0 {
		evalOpts = append(evalOpts, eval.WithStackCapacity(r.stackCap))
	}
	if r.rlimit > 0 {
		evalOpts = append(evalOpts, eval.WithRecursionLimit(r.rlimit))
	}
	r.evaluator = eval.New(evalOpts...)

	// Load the prelude unless disabled. Prelude lines are trusted; a
	// failure here means the prelude itself is broken, so it is
	// ignored the same way the rest of the line would be at a prompt.
	if !r.noPrelude {
		prelude := r.prelude
		if prelude == "" {
			prelude = DefaultPrelude
		}
		for _, line := range strings.Split(prelude, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			r.evaluator.EvalLine(line)
		}
	}

	return r
}

// write fans engine output out to the per-call capture and the
// configured writer.
func (r *Runtime) write(text string) error {
	if r.capture != nil {
		r.capture.WriteString(text)
	}
	if r.out != nil {
		if _, err := io.WriteString(r.out, text); err != nil {
			return err
		}
	}
	return nil
}

// Eval interprets one input line and returns the text it emitted,
// without the trailing newline. The evaluation is recorded to the
// history store when one is configured.
func (r *Runtime) Eval(line string) (string, error) {
	var sb strings.Builder
	r.capture = &sb
	err := r.evaluator.EvalLine(line)
	r.capture = nil

	result := strings.TrimRight(sb.String(), "\n")
	if r.history != nil && strings.TrimSpace(line) != "" {
		errText := ""
		if err != nil {
			errText = err.Error()
		}
		r.history.Append(line, result, errText)
	}
	return result, err
}

// EvalReader interprets input line by line, stopping at the first
// failing line. The combined output of the successful lines is
// returned alongside the error.
func (r *Runtime) EvalReader(reader io.Reader) (string, error) {
	sc := bufio.NewScanner(reader)
	var parts []string
	for sc.Scan() {
		out, err := r.Eval(sc.Text())
		if out != "" {
			parts = append(parts, out)
		}
		if err != nil {
			return strings.Join(parts, "\n"), err
		}
	}
	return strings.Join(parts, "\n"), sc.Err()
}

// EvalFile interprets a script file.
func (r *Runtime) EvalFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return r.EvalReader(f)
}

// Stack returns a top-first snapshot of the value stack.
func (r *Runtime) Stack() []int {
	cells := r.evaluator.Stack().Snapshot()
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}

// Words returns the sorted names of all user-defined words.
func (r *Runtime) Words() []string {
	return r.evaluator.Dict().UserNames()
}

// History returns up to limit transcript entries, newest first, or nil
// when no history store is configured.
func (r *Runtime) History(limit int) ([]store.Entry, error) {
	if r.history == nil {
		return nil, nil
	}
	return r.history.Recent(limit)
}

// Close releases resources.
func (r *Runtime) Close() error {
	if r.history != nil {
		return r.history.Close()
	}
	return nil
}
