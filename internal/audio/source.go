// Package audio предоставляет захват звука с микрофона и воспроизведение.
package audio

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	// SampleRate - частота дискретизации (стандарт для speech recognition).
	SampleRate = 16000
	// Channels - количество каналов (mono).
	Channels = 1
	// FrameSize - количество сэмплов на одно блокирующее чтение.
	FrameSize = 4000
)

// Source захватывает звук с микрофона блокирующими чтениями
// фиксированных кадров int16.
type Source struct {
	mu     sync.Mutex
	stream *portaudio.Stream
	buffer []int16
	closed bool
}

// NewSource открывает входной поток по умолчанию.
// Недоступность устройства - фатальная ошибка запуска сессии.
func NewSource(sampleRate, frameSize int) (*Source, error) {
	if sampleRate <= 0 {
		sampleRate = SampleRate
	}
	if frameSize <= 0 {
		frameSize = FrameSize
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("portaudio init: %w", err)
	}

	buffer := make([]int16, frameSize)
	stream, err := portaudio.OpenDefaultStream(Channels, 0, float64(sampleRate), frameSize, buffer)
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("не удалось открыть аудиоустройство: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("не удалось запустить захват: %w", err)
	}

	return &Source{
		stream: stream,
		buffer: buffer,
	}, nil
}

// Read блокируется до накопления полного кадра и возвращает его копию.
// Переполнение входного буфера устройства не ошибка: кадр логируется
// и захват продолжается.
func (s *Source) Read() ([]int16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, fmt.Errorf("источник закрыт")
	}

	if err := s.stream.Read(); err != nil {
		if errors.Is(err, portaudio.InputOverflowed) {
			log.Printf("переполнение входного буфера, продолжаем")
		} else {
			return nil, fmt.Errorf("ошибка чтения аудио: %w", err)
		}
	}

	frame := make([]int16, len(s.buffer))
	copy(frame, s.buffer)
	return frame, nil
}

// Close останавливает захват и освобождает устройство.
// Безопасен при повторном вызове: ресурсы освобождаются ровно один раз.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	s.stream.Stop()
	err := s.stream.Close()
	portaudio.Terminate()
	return err
}
