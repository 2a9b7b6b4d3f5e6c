package decode

import (
	"strconv"
	"strings"
	"time"
)

// ImageBlob is an embedded cover-art image, extracted verbatim from the
// container (no re-encoding).
type ImageBlob struct {
	MIMEType string
	Data     []byte
}

// TrackDetails is an immutable metadata snapshot taken once at Open,
// independent of playback progress.
type TrackDetails struct {
	Duration *time.Duration
	Title    *string
	Artist   *string
	Cover    *ImageBlob
}

// probeFormat and probeStream mirror the subset of ffprobe's
// "-print_format json -show_format -show_streams" output spindle reads.
type probeFormat struct {
	Duration string            `json:"duration"`
	Tags     map[string]string `json:"tags"`
}

type probeStream struct {
	Index        int               `json:"index"`
	CodecType    string            `json:"codec_type"`
	CodecName    string            `json:"codec_name"`
	SampleRate   string            `json:"sample_rate"`
	Channels     int               `json:"channels"`
	TimeBase     string            `json:"time_base"`
	Tags         map[string]string `json:"tags"`
	Disposition  map[string]int    `json:"disposition"`
}

type probeResult struct {
	Format  probeFormat   `json:"format"`
	Streams []probeStream `json:"streams"`
}

func (r *probeResult) defaultAudioStream() (probeStream, bool) {
	for _, s := range r.Streams {
		if s.CodecType == "audio" {
			return s, true
		}
	}
	return probeStream{}, false
}

func (r *probeResult) attachedPicStream() (probeStream, bool) {
	for _, s := range r.Streams {
		if s.CodecType == "video" && s.Disposition["attached_pic"] == 1 {
			return s, true
		}
	}
	return probeStream{}, false
}

// buildTrackDetails merges container-level tags (format.tags) and the
// default audio stream's tags (streams[i].tags): title falls back to the
// stream's tags when the container leaves it empty, artist is read from
// the container only. This mirrors
// original_source/audio-player/src/track.rs's merge against symphonia's
// container and stream metadata revisions exactly, including its
// asymmetry — only title falls back to the stream, artist does not. Cover
// is not a tag; it is passed in from the attached-picture stream.
func buildTrackDetails(probe probeResult, audio probeStream, cover *ImageBlob) TrackDetails {
	details := TrackDetails{Cover: cover}

	details.Title = firstTag(probe.Format.Tags, audio.Tags, "title")
	details.Artist = tagOrNil(probe.Format.Tags, "artist")

	if seconds, err := strconv.ParseFloat(strings.TrimSpace(probe.Format.Duration), 64); err == nil && seconds > 0 {
		d := time.Duration(seconds * float64(time.Second))
		details.Duration = &d
	}

	return details
}

// firstTag looks up key (case-insensitively) in primary first, then
// secondary, returning the first match.
func firstTag(primary, secondary map[string]string, key string) *string {
	if v, ok := lookupTagCI(primary, key); ok {
		return &v
	}
	if v, ok := lookupTagCI(secondary, key); ok {
		return &v
	}
	return nil
}

// tagOrNil looks up key (case-insensitively) in tags only, with no
// secondary fallback — artist is taken from the container's tags alone,
// unlike title.
func tagOrNil(tags map[string]string, key string) *string {
	if v, ok := lookupTagCI(tags, key); ok {
		return &v
	}
	return nil
}

func lookupTagCI(tags map[string]string, key string) (string, bool) {
	for k, v := range tags {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}
