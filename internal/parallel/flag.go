package parallel

// flagState is the boolean shared by a FlagSender and its readers.
type flagState struct {
	g     guard
	value bool
}

// FlagSender is the write end of a sync flag.
// It is held by the control goroutine.
type FlagSender struct {
	s *flagState
}

// FlagReader is the read end of a sync flag.
// It is a small value type and is copied freely to every goroutine that
// needs to observe the flag.
type FlagReader struct {
	s *flagState
}

// NewSyncFlag creates a shared boolean with the given initial value and
// returns its paired write and read handles.
func NewSyncFlag(initial bool) (*FlagSender, FlagReader) {
	s := &flagState{value: initial}
	return &FlagSender{s: s}, FlagReader{s: s}
}

// Set assigns a new value. It is visible to every reader on its next Get.
func (f *FlagSender) Set(v bool) error {
	return f.s.g.do(func() { f.s.value = v })
}

// Reader returns another read handle for the same flag.
func (f *FlagSender) Reader() FlagReader {
	return FlagReader{s: f.s}
}

// Get reads the current value.
func (f FlagReader) Get() (bool, error) {
	var v bool
	err := f.s.g.do(func() { v = f.s.value })
	return v, err
}
