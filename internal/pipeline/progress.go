package pipeline

// Stage identifies one step of the extraction state machine.
type Stage string

const (
	StageIdle            Stage = "idle"
	StageDecoding        Stage = "decoding"
	StageExtracting      Stage = "extracting"
	StageRegionDetecting Stage = "region_detecting"
	StageMatching        Stage = "matching"
	StageDone            Stage = "done"
	StageFailed          Stage = "failed"
)

// ProgressFunc receives stage transitions during an extraction run.
// Callbacks run synchronously on the extraction goroutine and must
// return quickly.
type ProgressFunc func(stage Stage)

func (p *Pipeline) report(cb ProgressFunc, s Stage) {
	if cb != nil {
		cb(s)
	}
}
