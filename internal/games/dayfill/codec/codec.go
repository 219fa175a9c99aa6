// Package codec serializes solution snapshots: JSON and YAML files for
// export/import, and compact share codes for passing a board around as text.
package codec

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/dayfill/internal/games/dayfill/core"
)

// Format is a snapshot file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("codec: unsupported format %q", s)
	}
}

// FormatForPath picks a format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml") {
		return FormatYAML
	}
	return FormatJSON
}

// Marshal encodes a snapshot in the given format.
func Marshal(snap core.Snapshot, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		data, err := sonic.ConfigStd.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("codec: failed to marshal JSON: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return nil, fmt.Errorf("codec: failed to marshal YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("codec: failed to marshal YAML: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("codec: unsupported format %q", f)
	}
}

// Unmarshal decodes a snapshot and checks its date.
func Unmarshal(data []byte, f Format) (core.Snapshot, error) {
	var snap core.Snapshot
	switch f {
	case FormatJSON:
		if err := sonic.ConfigStd.Unmarshal(data, &snap); err != nil {
			return core.Snapshot{}, fmt.Errorf("codec: failed to unmarshal JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return core.Snapshot{}, fmt.Errorf("codec: failed to unmarshal YAML: %w", err)
		}
	default:
		return core.Snapshot{}, fmt.Errorf("codec: unsupported format %q", f)
	}
	if _, err := snap.ParseDate(); err != nil {
		return core.Snapshot{}, fmt.Errorf("codec: %w", err)
	}
	return snap, nil
}

var shareEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// EncodeShareCode packs a snapshot as URL-safe Base64 of gzip'd JSON.
func EncodeShareCode(snap core.Snapshot) (string, error) {
	jsonBytes, err := sonic.ConfigStd.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	var buf bytes.Buffer
	gzWriter, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to create gzip writer: %w", err)
	}
	if _, err := gzWriter.Write(jsonBytes); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return "", fmt.Errorf("failed to compress: %w", err)
	}

	return shareEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeShareCode reverses EncodeShareCode.
func DecodeShareCode(code string) (core.Snapshot, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return core.Snapshot{}, fmt.Errorf("share code is empty")
	}

	// 1. Base64 URL-safe decode
	decoded, err := shareEncoding.DecodeString(code)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to decode Base64: %w", err)
	}

	// 2. Gzip decompression
	gzReader, err := gzip.NewReader(bytes.NewReader(decoded))
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzReader.Close()

	jsonBytes, err := io.ReadAll(gzReader)
	if err != nil {
		return core.Snapshot{}, fmt.Errorf("failed to decompress gzip: %w", err)
	}

	// 3. JSON unmarshal
	return Unmarshal(jsonBytes, FormatJSON)
}
