package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/zotero-sync/models"
)

func TestRenderBuildInfo(t *testing.T) {
	out := RenderBuildInfo("zsync", models.NewAppBuildInfo("v1.2.0", "", "abc123"))

	assert.Contains(t, out, "zsync")
	assert.Contains(t, out, "v1.2.0")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, "N/A")
}

func TestRenderSummary(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	summary := models.SyncSummary{
		SessionID:  "s1",
		StartedAt:  start,
		FinishedAt: start.Add(1500 * time.Millisecond),
		Libraries:  2,
		Created:    3,
		Submitted:  1,
	}

	out := RenderSummary(summary, nil)
	assert.Contains(t, out, "completed")
	assert.Contains(t, out, "3 created, 0 updated, 0 removed")
	assert.Contains(t, out, "1.5s")
	assert.NotContains(t, out, "Failures")

	summary.AddFailure(models.PersonalLibrary(42), models.ObjectItem, "ABCD2345", models.FailureVersionConflict, errors.New("412"))
	out = RenderSummary(summary, nil)
	assert.Contains(t, out, "completed with failures")
	assert.Contains(t, out, "ABCD2345")

	out = RenderSummary(models.SyncSummary{}, errors.New("unauthorized"))
	assert.Contains(t, out, "aborted: unauthorized")
}

func TestRenderStatus(t *testing.T) {
	lib := models.LibraryInfo{Library: models.GroupLibrary(7), Name: "Reading group"}
	out := RenderStatus(
		models.Session{UserID: 42, Name: "alice"},
		[]models.LibraryStatus{{Library: lib, Versions: map[models.ObjectType]int64{models.ObjectItem: 12}, Modified: 1}},
		[]models.DeletionEntry{{Library: lib.Library, Type: models.ObjectItem, Key: "GONE2345", Version: 12}},
	)

	assert.Contains(t, out, "alice (42)")
	assert.Contains(t, out, "Reading group")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "GONE2345 @12")
}
