package webpack

import (
	"encoding/json"
	"fmt"
)

const (
	StatusDone      = "done"
	StatusCompile   = "compile"
	StatusCompiling = "compiling"
	StatusError     = "error"
)

// Chunk is one file of a bundle.
type Chunk struct {
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	PublicPath string `json:"publicPath,omitempty"`
	URL        string `json:"url"`
}

// Stats is a parsed stats file.
type Stats struct {
	Status     string
	PublicPath string
	Chunks     map[string][]Chunk
	Error      string
	File       string
	Message    string
}

// Compiling reports whether webpack was still building when the file was written.
func (s *Stats) Compiling() bool {
	return s.Status == StatusCompile || s.Status == StatusCompiling
}

type rawStats struct {
	Status     string                       `json:"status"`
	PublicPath string                       `json:"publicPath"`
	Chunks     map[string][]json.RawMessage `json:"chunks"`
	Assets     map[string]Chunk             `json:"assets"`
	Error      string                       `json:"error"`
	File       string                       `json:"file"`
	Message    string                       `json:"message"`
}

// ParseStats decodes a stats file in either layout.
func ParseStats(data []byte) (*Stats, error) {
	var raw rawStats
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}

	stats := &Stats{
		Status:     raw.Status,
		PublicPath: raw.PublicPath,
		Chunks:     make(map[string][]Chunk, len(raw.Chunks)),
		Error:      raw.Error,
		File:       raw.File,
		Message:    raw.Message,
	}

	for bundle, entries := range raw.Chunks {
		chunks := make([]Chunk, 0, len(entries))
		for _, entry := range entries {
			chunk, err := decodeChunk(entry, raw.Assets)
			if err != nil {
				return nil, fmt.Errorf("bundle %s: %w", bundle, err)
			}
			chunks = append(chunks, chunk)
		}
		stats.Chunks[bundle] = chunks
	}
	return stats, nil
}

// decodeChunk accepts a chunk object or a file name described in assets.
func decodeChunk(entry json.RawMessage, assets map[string]Chunk) (Chunk, error) {
	var name string
	if err := json.Unmarshal(entry, &name); err == nil {
		chunk, ok := assets[name]
		if !ok {
			return Chunk{Name: name}, nil
		}
		if chunk.Name == "" {
			chunk.Name = name
		}
		return chunk, nil
	}

	var chunk Chunk
	if err := json.Unmarshal(entry, &chunk); err != nil {
		return Chunk{}, fmt.Errorf("invalid chunk %s: %w", entry, err)
	}
	return chunk, nil
}
