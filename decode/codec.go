package decode

// TimeBase is the codec-native unit used to convert frame counts to
// wall-clock time: one tick is Num/Den seconds.
type TimeBase struct {
	Num uint32
	Den uint32
}

// CodecParameters is a read-only view into a DecodedTrack's source format,
// used by the resampler to choose its fixed input chunk width.
type CodecParameters struct {
	SampleRate uint32
	Channels   uint32
	// MaxFramesPerPacket is nil when the external demuxer doesn't report a
	// fixed packet size (true for most containers probed through ffprobe);
	// the resampler falls back to a per-codec default in that case.
	MaxFramesPerPacket *uint32
	// CodecTag is the demuxer's codec name (e.g. "mp3", "flac", "aac"),
	// used only to special-case the MP3 1152-frame packet size.
	CodecTag string
	TimeBase TimeBase
}

// mp3CodecTag is compared case-sensitively against ffprobe's codec_name.
const mp3CodecTag = "mp3"

// IsMP3 reports whether this track's codec is MP3, the one codec spec.md
// calls out with a non-default packet size when MaxFramesPerPacket is
// unknown.
func (p CodecParameters) IsMP3() bool {
	return p.CodecTag == mp3CodecTag
}
