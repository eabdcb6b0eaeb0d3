package export

import "time"

// DefaultBaseName is the file name stem used by the dashboard
const DefaultBaseName = "kubernetes_manager_data"

const timestampLayout = "20060102-150405"

// FileName builds the export file name, e.g. kubernetes_manager_data.xlsx or
// kubernetes_manager_data-20230610-142500.xlsx when timestamped.
func FileName(base string, format Format, t time.Time, timestamped bool) string {
	if base == "" {
		base = DefaultBaseName
	}
	if timestamped {
		base += "-" + t.UTC().Format(timestampLayout)
	}
	return base + "." + format.Extension()
}
