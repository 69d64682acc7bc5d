package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/zotero-sync/models"
)

// RenderSummary renders the outcome of one sync session. err is the error
// the session ended with, if any.
func RenderSummary(summary models.SyncSummary, err error) string {
	state := okStyle.Render("completed")
	switch {
	case err != nil:
		state = errorStyle.Render("aborted: " + err.Error())
	case summary.Partial():
		state = warnStyle.Render("completed with failures")
	}

	duration := "-"
	if !summary.StartedAt.IsZero() && !summary.FinishedAt.IsZero() {
		duration = summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond).String()
	}

	body := renderFields(
		[2]string{"Session", valueOrNA(summary.SessionID)},
		[2]string{"State", state},
		[2]string{"Duration", duration},
		[2]string{"Libraries", strconv.Itoa(summary.Libraries)},
		[2]string{"Downloaded", fmt.Sprintf("%d created, %d updated, %d removed", summary.Created, summary.Updated, summary.Removed)},
		[2]string{"Uploaded", strconv.Itoa(summary.Submitted)},
		[2]string{"Deletions", fmt.Sprintf("%d confirmed, %d pending", summary.DeletionsConfirmed, len(summary.DeletionsUnconfirmed))},
	)

	if len(summary.Failures) > 0 {
		lines := make([]string, 0, len(summary.Failures))
		for _, f := range summary.Failures {
			lines = append(lines, fmt.Sprintf("%s %s %s: %s %s", f.Library, f.Type, f.Key, warnStyle.Render(string(f.Kind)), f.Reason))
		}
		body += "\n\n" + titleStyle.Render("Failures") + "\n" + strings.Join(lines, "\n")
	}

	return renderPage("Sync", body)
}
