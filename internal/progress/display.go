package progress

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// ProgressDisplay orchestrates the display of progress indicators
type ProgressDisplay struct {
	capabilities TerminalCapabilities
	currentStage *StageInfo
	spinner      *spinner.Spinner
	symbols      ProgressSymbols
}

// NewProgressDisplay creates a new progress display with the given terminal capabilities
func NewProgressDisplay(caps TerminalCapabilities) *ProgressDisplay {
	return &ProgressDisplay{
		capabilities: caps,
		symbols:      SelectSymbols(caps),
	}
}

// StartStage begins displaying progress for a stage
func (p *ProgressDisplay) StartStage(stage StageInfo) error {
	if err := stage.Validate(); err != nil {
		return err
	}

	p.currentStage = &stage

	msg := buildStageMessage(stage, "Running")

	if p.capabilities.IsTTY {
		// TTY mode: Start spinner animation
		p.spinner = spinner.New(
			spinner.CharSets[p.symbols.SpinnerSet],
			100*time.Millisecond,
		)
		p.spinner.Writer = os.Stderr // Write to stderr to avoid interfering with generated output on stdout
		p.spinner.Suffix = " " + msg
		p.spinner.Start()
	} else {
		// Non-interactive mode: Just print the message
		fmt.Println(msg)
	}

	return nil
}

// UpdateAttempt updates the display with retry attempt information
func (p *ProgressDisplay) UpdateAttempt(stage StageInfo) error {
	return p.StartStage(stage)
}

// CompleteStage stops the spinner and displays completion status
func (p *ProgressDisplay) CompleteStage(stage StageInfo) error {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}

	mark := checkmark(p.symbols, p.capabilities.SupportsColor)
	counter := formatStageCounter(stage.Number, stage.TotalStages)
	fmt.Printf("%s %s %s stage complete\n", mark, counter, capitalize(stage.Name))

	p.currentStage = nil
	return nil
}

// FailStage stops the spinner and displays failure status
func (p *ProgressDisplay) FailStage(stage StageInfo, err error) error {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}

	mark := failureMark(p.symbols, p.capabilities.SupportsColor)
	counter := formatStageCounter(stage.Number, stage.TotalStages)
	fmt.Printf("%s %s %s stage failed: %v\n", mark, counter, capitalize(stage.Name), err)

	p.currentStage = nil
	return nil
}

// StopSpinner stops the spinner without showing completion/failure
// This is useful when you want to pause progress display during interactive output
func (p *ProgressDisplay) StopSpinner() {
	if p.spinner != nil {
		p.spinner.Stop()
		p.spinner = nil
	}
}
