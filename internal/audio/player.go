package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// playbackChunk - размер кадра воспроизведения в сэмплах на канал.
const playbackChunk = 1024

// Player воспроизводит PCM int16 через выходное устройство по умолчанию.
// Вывод блокирующий: захват и речь делят один аудиоконвейер и
// намеренно не перекрываются.
type Player struct{}

// NewPlayer создаёт проигрыватель.
func NewPlayer() (*Player, error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}
	return &Player{}, nil
}

// Play проигрывает сэмплы целиком и возвращается после окончания звука.
func (p *Player) Play(samples []int16, sampleRate float64, channels int) error {
	if len(samples) == 0 {
		return nil
	}
	if channels <= 0 {
		channels = 1
	}

	out := make([]int16, playbackChunk*channels)
	stream, err := portaudio.OpenDefaultStream(0, channels, sampleRate, playbackChunk, out)
	if err != nil {
		return fmt.Errorf("не удалось открыть устройство вывода: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("не удалось запустить вывод: %w", err)
	}
	defer stream.Stop()

	for offset := 0; offset < len(samples); offset += len(out) {
		n := copy(out, samples[offset:])
		// Последний неполный кадр дополняем тишиной
		for i := n; i < len(out); i++ {
			out[i] = 0
		}
		if err := stream.Write(); err != nil {
			return fmt.Errorf("ошибка записи в устройство вывода: %w", err)
		}
	}

	return nil
}

// Close освобождает ресурсы проигрывателя.
func (p *Player) Close() error {
	return portaudio.Terminate()
}
