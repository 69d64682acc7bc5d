package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/zotero-sync/models"
)

// RenderStatus renders the stored version map of every library and the
// pending deletion queue.
func RenderStatus(account models.Session, libs []models.LibraryStatus, queue []models.DeletionEntry) string {
	sections := []string{renderFields(
		[2]string{"User", fmt.Sprintf("%s (%d)", valueOrNA(account.Name), account.UserID)},
		[2]string{"Libraries", fmt.Sprint(len(libs))},
		[2]string{"Queued deletions", fmt.Sprint(len(queue))},
	)}

	for _, st := range libs {
		pairs := make([][2]string, 0, len(models.AllObjectTypes)+1)
		for _, typ := range models.AllObjectTypes {
			pairs = append(pairs, [2]string{string(typ), fmt.Sprint(st.Versions[typ])})
		}
		pairs = append(pairs, [2]string{"modified", fmt.Sprint(st.Modified)})

		title := st.Library.Library.String()
		if st.Library.Name != "" {
			title += " " + st.Library.Name
		}
		sections = append(sections, titleStyle.Render(title)+"\n"+renderFields(pairs...))
	}

	if len(queue) > 0 {
		lines := make([]string, 0, len(queue))
		for _, e := range queue {
			lines = append(lines, fmt.Sprintf("%s %s %s @%d", e.Library, e.Type, e.Key, e.Version))
		}
		sections = append(sections, titleStyle.Render("Deletion queue")+"\n"+strings.Join(lines, "\n"))
	}

	return renderPage("Status", strings.Join(sections, "\n\n"))
}
