// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package locationdef

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// maxDefinitionSize bounds the decompressed size of a definition file.
const maxDefinitionSize = 16 << 20

// zstdDecoder is reused across calls. zstd.Decoder is safe for
// concurrent use with DecodeAll.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxDefinitionSize))
	if err != nil {
		panic("locationdef: zstd decoder initialization failed: " + err.Error())
	}
}

// stripCompression returns path without a recognized compression
// suffix (".zst" or ".lz4"), and that suffix in lower case. Paths
// without one are returned unchanged with an empty suffix.
func stripCompression(path string) (string, string) {
	extension := strings.ToLower(filepath.Ext(path))
	switch extension {
	case ".zst", ".lz4":
		return path[:len(path)-len(extension)], extension
	default:
		return path, ""
	}
}

// decompress decodes data according to a suffix from stripCompression.
func decompress(data []byte, suffix string) ([]byte, error) {
	switch suffix {
	case ".zst":
		result, err := zstdDecoder.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return result, nil
	case ".lz4":
		reader := io.LimitReader(lz4.NewReader(bytes.NewReader(data)), maxDefinitionSize+1)
		result, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if len(result) > maxDefinitionSize {
			return nil, fmt.Errorf("lz4 decompress: definition exceeds %d bytes", maxDefinitionSize)
		}
		return result, nil
	default:
		return data, nil
	}
}
