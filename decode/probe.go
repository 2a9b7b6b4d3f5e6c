package decode

import (
	"bytes"
	"encoding/json"
	"fmt"

	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// runProbe shells out to ffprobe (via ffmpeg-go's Probe helper, the same
// library the decode pipeline below uses to run ffmpeg itself) and parses
// its JSON container/stream report.
func runProbe(path string) (probeResult, error) {
	raw, err := ffmpeg.Probe(path)
	if err != nil {
		return probeResult{}, fmt.Errorf("%w: ffprobe %s: %v", ErrIO, path, err)
	}

	var result probeResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return probeResult{}, fmt.Errorf("%w: parsing ffprobe output for %s: %v", ErrIO, path, err)
	}
	return result, nil
}

// extractCover pulls the attached-picture stream out of the container
// verbatim (no re-encoding) using an image2pipe mux, the same
// Input(...).Output("pipe:", ...).WithOutput(writer) shape
// audio/ffmpegbase.go uses for raw PCM.
func extractCover(path string, pic probeStream) (*ImageBlob, error) {
	var buf bytes.Buffer
	err := ffmpeg.Input(path).
		Output("pipe:", ffmpeg.KwArgs{
			"map": fmt.Sprintf("0:%d", pic.Index),
			"c":   "copy",
			"f":   "image2pipe",
		}).
		WithOutput(&buf).
		ErrorToStdOut().
		Run()
	if err != nil {
		return nil, fmt.Errorf("%w: extracting cover art from %s: %v", ErrIO, path, err)
	}
	return &ImageBlob{MIMEType: coverMIMEType(pic.CodecName), Data: buf.Bytes()}, nil
}

func coverMIMEType(codecName string) string {
	switch codecName {
	case "png":
		return "image/png"
	case "bmp":
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}
