package batch

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame  int        `json:"frame"`
	Angle  float64    `json:"angle_rad"`
	Quat   [4]float64 `json:"quaternion_wxyz"`
	Image  string     `json:"image"`
	Failed bool       `json:"failed,omitempty"`
}

// WriteManifest writes the frame list as indented JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Frame:  r.Frame,
			Angle:  r.Angle,
			Quat:   r.Quat,
			Image:  r.Image,
			Failed: !r.Success,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "batch: marshal manifest")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "batch: write %s", path)
	}
	return nil
}
