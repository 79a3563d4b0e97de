// Package audio plays the game's synthesized sound effects on a fixed set
// of mixer channels.
package audio

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/sunnyland/common"
	"github.com/milk9111/sunnyland/prefabs"
)

// Mixer owns the audio context. A sound played on a busy channel cuts off
// whatever that channel was playing.
type Mixer struct {
	ctx    *ebaudio.Context
	logger *log.Logger

	mu       sync.Mutex
	sounds   map[string][]byte
	channels [common.SoundChannels]*ebaudio.Player
}

func NewMixer(specs []prefabs.SoundSpec, logger *log.Logger) (*Mixer, error) {
	if logger == nil {
		logger = log.Default()
	}
	m := &Mixer{
		ctx:    ebaudio.NewContext(SampleRate),
		logger: logger,
	}
	if err := m.SetSounds(specs); err != nil {
		return nil, err
	}
	return m, nil
}

// SetSounds re-synthesizes the sound bank. Channels keep playing what they
// already started.
func (m *Mixer) SetSounds(specs []prefabs.SoundSpec) error {
	sounds := make(map[string][]byte, len(specs))
	for _, spec := range specs {
		pcm, err := Synthesize(spec)
		if err != nil {
			return err
		}
		sounds[spec.Name] = pcm
	}

	m.mu.Lock()
	m.sounds = sounds
	m.mu.Unlock()
	m.logger.Debug("sound bank ready", "sounds", len(sounds))
	return nil
}

func (m *Mixer) Play(name string, channel int) {
	if channel < 0 || channel >= len(m.channels) {
		m.logger.Warn("no such channel", "sound", name, "channel", channel)
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	pcm, ok := m.sounds[name]
	if !ok {
		m.logger.Warn("unknown sound", "sound", name)
		return
	}
	if prev := m.channels[channel]; prev != nil {
		prev.Pause()
		if err := prev.Close(); err != nil {
			m.logger.Debug("close channel", "channel", channel, "err", err)
		}
	}
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	m.channels[channel] = p
}

// Close stops every channel.
func (m *Mixer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	var firstErr error
	for i, p := range m.channels {
		if p == nil {
			continue
		}
		if err := p.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("audio: close channel %d: %w", i, err)
		}
		m.channels[i] = nil
	}
	return firstErr
}
