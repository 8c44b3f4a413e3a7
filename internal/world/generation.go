package world

// GenerationState tracks how far world construction has progressed.
type GenerationState int

const (
	GenerationIdle GenerationState = iota
	GenerationInitializing
	GenerationGenerating
	GenerationDone
)

func (s GenerationState) String() string {
	switch s {
	case GenerationIdle:
		return "idle"
	case GenerationInitializing:
		return "initializing"
	case GenerationGenerating:
		return "generating"
	case GenerationDone:
		return "done"
	default:
		return "unknown"
	}
}

// IsGenerating reports whether construction is underway.
func (s GenerationState) IsGenerating() bool {
	return s == GenerationGenerating || s == GenerationInitializing
}

// IsDone reports whether construction finished.
func (s GenerationState) IsDone() bool { return s == GenerationDone }
