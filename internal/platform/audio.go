package platform

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Names of the built-in sound cues.
const (
	SoundBell            = "bell"
	SoundPhaseComplete   = "phase_complete"
	SoundSessionComplete = "session_complete"
)

const sampleRate = beep.SampleRate(44100)

type note struct {
	freq float64
	dur  time.Duration
}

// cues are synthesised so the binary ships without audio assets. A zero
// frequency is a rest.
var cues = map[string][]note{
	SoundBell: {
		{880, 400 * time.Millisecond},
	},
	SoundPhaseComplete: {
		{660, 180 * time.Millisecond},
		{0, 60 * time.Millisecond},
		{880, 240 * time.Millisecond},
	},
	SoundSessionComplete: {
		{523.25, 150 * time.Millisecond},
		{659.25, 150 * time.Millisecond},
		{783.99, 150 * time.Millisecond},
		{1046.5, 400 * time.Millisecond},
	},
}

// SpeakerPlayer plays cues and audio files through the default output
// device.
type SpeakerPlayer struct {
	mu      sync.Mutex
	once    sync.Once
	initErr error
	volume  float64
}

// NewSpeakerPlayer returns a player at the given volume in [0, 1]. The audio
// device is opened lazily on the first Play.
func NewSpeakerPlayer(volume float64) (*SpeakerPlayer, error) {
	p := &SpeakerPlayer{}

	if err := p.SetVolume(volume); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *SpeakerPlayer) initSpeaker() error {
	p.once.Do(func() {
		bufferSize := 10

		p.initErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Duration(int(time.Second)/bufferSize)),
		)
	})

	return p.initErr
}

// Play starts the named cue, or the audio file at name when it carries an
// audio extension. It does not wait for playback to finish.
func (p *SpeakerPlayer) Play(name string) error {
	stream, closer, err := load(name)
	if err != nil {
		return err
	}

	if err := p.initSpeaker(); err != nil {
		closeQuietly(closer)
		return err
	}

	p.mu.Lock()
	vol := withVolume(stream, p.volume)
	p.mu.Unlock()

	speaker.Play(beep.Seq(vol, beep.Callback(func() {
		closeQuietly(closer)
	})))

	return nil
}

// Stop silences everything that is playing.
func (p *SpeakerPlayer) Stop() error {
	if p.initSpeaker() != nil {
		return nil
	}

	speaker.Clear()

	return nil
}

// SetVolume sets the volume for subsequent cues.
func (p *SpeakerPlayer) SetVolume(level float64) error {
	if math.IsNaN(level) || level < 0 || level > 1 {
		return errInvalidVolume.Fmt(level)
	}

	p.mu.Lock()
	p.volume = level
	p.mu.Unlock()

	return nil
}

// withVolume scales s by level on a logarithmic curve. Full volume leaves
// the stream untouched and zero is silent.
func withVolume(s beep.Streamer, level float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(max(level, 1e-3)),
		Silent:   level == 0,
	}
}

// load resolves name to a stream. The returned closer, if any, must be
// closed once playback is done.
func load(name string) (beep.Streamer, io.Closer, error) {
	if filepath.Ext(name) == "" {
		s, err := cue(name)
		return s, nil, err
	}

	return decodeFile(name)
}

func cue(name string) (beep.Streamer, error) {
	notes, ok := cues[name]
	if !ok {
		return nil, errUnknownSound.Fmt(name)
	}

	parts := make([]beep.Streamer, 0, len(notes))

	for _, n := range notes {
		samples := sampleRate.N(n.dur)

		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}

		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}

		parts = append(parts, beep.Take(samples, tone))
	}

	return beep.Seq(parts...), nil
}

func decodeFile(path string) (beep.Streamer, io.Closer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()
		return nil, nil, errInvalidSoundFormat.Fmt(ext)
	}

	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}

	var s beep.Streamer = stream

	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, stream)
	}

	return s, stream, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
