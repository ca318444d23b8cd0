package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/arthur-debert/dottie/pkg/errors"
	"github.com/arthur-debert/dottie/pkg/types"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

type runDocument struct {
	Status  string                 `json:"status"`
	Survey  *types.ConflictSurvey  `json:"survey,omitempty"`
	Batch   *types.LinkBatchResult `json:"batch,omitempty"`
	Backups []types.BackupOutcome  `json:"backups,omitempty"`
}

// RenderRun encodes the run with a "blocked" or "completed" status.
func (r *JSONRenderer) RenderRun(result types.LinkRunResult) error {
	var doc runDocument
	switch run := result.(type) {
	case *types.BlockedRun:
		doc = runDocument{Status: "blocked", Survey: &run.Survey}
	case *types.CompletedRun:
		doc = runDocument{Status: "completed", Batch: &run.Batch, Backups: run.Backups}
	default:
		panic(fmt.Sprintf("output: unknown LinkRunResult %T", result))
	}
	return r.encoder.Encode(doc)
}

// RenderSurvey encodes the survey with the profile it was made for.
func (r *JSONRenderer) RenderSurvey(profile *types.ResolvedProfile, survey types.ConflictSurvey) error {
	return r.encoder.Encode(struct {
		Profile *types.ResolvedProfile `json:"profile,omitempty"`
		Survey  types.ConflictSurvey   `json:"survey"`
	}{profile, survey})
}

// RenderProfiles encodes the resolved profiles as an array.
func (r *JSONRenderer) RenderProfiles(profiles []*types.ResolvedProfile) error {
	if profiles == nil {
		profiles = []*types.ResolvedProfile{}
	}
	return r.encoder.Encode(profiles)
}

// RenderError renders an error as JSON
func (r *JSONRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]interface{}{
		"error":   err.Error(),
		"code":    errors.GetErrorCode(err),
		"details": errors.GetErrorDetails(err),
	})
}
