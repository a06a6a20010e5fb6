// Package tts предоставляет синтез речи через Edge TTS.
package tts

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"
	"github.com/wujunwei928/edge-tts-go/edge_tts"
)

// mp3Channels - go-mp3 всегда декодирует в 16-битное стерео.
const mp3Channels = 2

// Voice - явная конфигурация голоса вместо перебора установленных
// голосов по подстроке языка.
type Voice struct {
	Locale  string `json:"locale"`
	VoiceID string `json:"voice_id"`
}

// availableVoices - известные голоса Edge TTS по локалям.
var availableVoices = []Voice{
	{Locale: "ru", VoiceID: "ru-RU-DmitryNeural"},
	{Locale: "ru", VoiceID: "ru-RU-SvetlanaNeural"},
	{Locale: "en", VoiceID: "en-US-AriaNeural"},
	{Locale: "en", VoiceID: "en-US-GuyNeural"},
}

// VoiceForLocale возвращает первый доступный голос локали.
// Для неизвестной локали - первый голос списка.
func VoiceForLocale(locale string) Voice {
	for _, v := range availableVoices {
		if v.Locale == locale {
			return v
		}
	}
	return availableVoices[0]
}

// Player воспроизводит декодированный PCM.
type Player interface {
	Play(samples []int16, sampleRate float64, channels int) error
}

// Speaker озвучивает текст: синтез MP3 через Edge TTS,
// декодирование и блокирующее воспроизведение.
type Speaker struct {
	voice  Voice
	player Player
}

// NewSpeaker создаёт Speaker с явно выбранным голосом.
// Пустой VoiceID заменяется первым доступным голосом локали.
func NewSpeaker(voice Voice, player Player) *Speaker {
	if voice.VoiceID == "" {
		voice = VoiceForLocale(voice.Locale)
	}
	return &Speaker{
		voice:  voice,
		player: player,
	}
}

// Voice возвращает текущий голос.
func (s *Speaker) Voice() Voice {
	return s.voice
}

// Speak произносит текст и возвращается после окончания звука.
func (s *Speaker) Speak(ctx context.Context, text string) error {
	if text == "" {
		return nil
	}

	start := time.Now()

	communicate, err := edge_tts.NewCommunicate(text, edge_tts.SetVoice(s.voice.VoiceID))
	if err != nil {
		return fmt.Errorf("ошибка создания Edge TTS: %w", err)
	}

	audioData, err := communicate.Stream()
	if err != nil {
		return fmt.Errorf("ошибка синтеза речи: %w", err)
	}

	samples, sampleRate, err := decodeMP3(audioData)
	if err != nil {
		return err
	}

	log.Printf("TTS: синтез %d символов за %v", len(text), time.Since(start).Round(time.Millisecond))

	if err := s.player.Play(samples, float64(sampleRate), mp3Channels); err != nil {
		return fmt.Errorf("ошибка воспроизведения: %w", err)
	}

	return nil
}

// decodeMP3 декодирует MP3 в int16 PCM.
func decodeMP3(data []byte) ([]int16, int, error) {
	decoder, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}

	raw, err := io.ReadAll(decoder)
	if err != nil {
		return nil, 0, fmt.Errorf("ошибка чтения PCM: %w", err)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
	}

	return samples, decoder.SampleRate(), nil
}
