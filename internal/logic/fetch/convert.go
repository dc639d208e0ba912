package fetch

import (
	"time"

	"github.com/joeblew999/plat-googlefonts/internal/model"
	"github.com/joeblew999/plat-googlefonts/internal/types"
)

// ToJobResponse converts a tracked fetch job to its API shape.
func ToJobResponse(job *model.FontFetchJobs) types.FetchJobResponse {
	r := types.FetchJobResponse{
		Id:        job.Id,
		FontId:    job.FontId,
		Status:    job.Status,
		Attempts:  int(job.Attempts),
		Rules:     int(job.Rules),
		Error:     model.NullStringValue(job.Error),
		CreatedAt: job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if job.FinishedAt.Valid {
		r.FinishedAt = job.FinishedAt.Time.UTC().Format(time.RFC3339)
	}
	return r
}
