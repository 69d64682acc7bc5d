// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/zotero-sync/models"

// RenderBuildInfo renders the version output of the binaries.
func RenderBuildInfo(app string, info models.AppBuildInfo) string {
	return renderPage(app, renderFields(
		[2]string{"Version", valueOrNA(info.Version)},
		[2]string{"Date", valueOrNA(info.Date)},
		[2]string{"Commit", valueOrNA(info.Commit)},
	))
}
