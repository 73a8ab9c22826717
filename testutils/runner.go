package testutils

// FakeRunner records command invocations and plays back a canned result.
type FakeRunner struct {
	Calls  [][]string
	Output []byte
	Err    error
}

func (r *FakeRunner) Run(name string, args ...string) ([]byte, error) {
	r.Calls = append(r.Calls, append([]string{name}, args...))
	return r.Output, r.Err
}
