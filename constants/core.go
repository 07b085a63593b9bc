package constants

import "time"

// Frame & Tick Timing
const (
	// FrameUpdateInterval is the frontend redraw interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TypingCharsPerSecond is the default dialogue reveal speed
	TypingCharsPerSecond = 25

	// MaxTypingCharsPerSecond caps the configurable reveal speed
	MaxTypingCharsPerSecond = 1000

	// EndingLineInterval is the game time between two revealed ending entries
	EndingLineInterval = 1500 * time.Millisecond
)

// Toast Durations
const (
	ToastClueDuration = 1500 * time.Millisecond
	ToastLoopDuration = 2000 * time.Millisecond
	ToastSaveDuration = 2000 * time.Millisecond
)

// Storage
const (
	// DefaultSaveKey is the record key of the single default save slot
	DefaultSaveKey = "timeLoopGameSave"

	// MaxLogSize triggers log rotation in the frontend
	MaxLogSize = 10 * 1024 * 1024
)
