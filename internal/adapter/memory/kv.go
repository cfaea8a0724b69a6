// Package memory provides an in-process key-value store. It is the
// default backend for development and tests; contents are lost on exit.
package memory

import (
	"bytes"
	"context"
	"sync"
)

type KV struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewKV() *KV {
	return &KV{data: make(map[string]map[string][]byte)}
}

func (s *KV) Get(_ context.Context, session, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[session][key]
	if !ok {
		return nil, false, nil
	}
	return bytes.Clone(v), true, nil
}

func (s *KV) Set(_ context.Context, session, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.data[session]
	if !ok {
		m = make(map[string][]byte)
		s.data[session] = m
	}
	m[key] = bytes.Clone(value)
	return nil
}

func (s *KV) Delete(_ context.Context, session, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.data[session]; ok {
		delete(m, key)
		if len(m) == 0 {
			delete(s.data, session)
		}
	}
	return nil
}
