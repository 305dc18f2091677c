package sommelier

import "fmt"

type Stage string

const (
	StageEmpty    Stage = "empty"
	StageDecode   Stage = "decode"
	StageValidate Stage = "validate"
)

// EnrichmentFailure means the model answered but the answer could not be used.
type EnrichmentFailure struct {
	Stage Stage
	Raw   string
	Err   error
}

func (e *EnrichmentFailure) Error() string {
	return fmt.Sprintf("enrichment failed at %s: %v", e.Stage, e.Err)
}

func (e *EnrichmentFailure) Unwrap() error {
	return e.Err
}
