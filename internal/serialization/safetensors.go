// Package serialization stores fixture tensors in SafeTensors format,
// so reference inputs and outputs can be compared by other runtimes.
//
// Layout:
//
//	[8 bytes: header size N (uint64 LE)]
//	[N bytes: JSON header, space padded to a multiple of 8]
//	[tensor data: little-endian F32/F64 values]
//
// Tensors are stored in name order. Values are converted to and from
// little-endian regardless of host byte order.
package serialization

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	json "github.com/goccy/go-json"

	"github.com/born-ml/fixtures/internal/tensor"
)

// MaxHeaderSize bounds the JSON header accepted by Read.
const MaxHeaderSize = 100 << 20

const metadataKey = "__metadata__"

// ErrInvalidFormat is returned for malformed SafeTensors data.
var ErrInvalidFormat = errors.New("serialization: invalid safetensors data")

// TensorHeader describes one tensor in the header.
type TensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Write encodes tensors and metadata to w.
func Write(w io.Writer, tensors map[string]*tensor.RawTensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if name == metadataKey {
			return fmt.Errorf("serialization: reserved tensor name %q", name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]any, len(names)+1)
	if len(metadata) > 0 {
		header[metadataKey] = metadata
	}

	var offset int64
	for _, name := range names {
		raw := tensors[name]
		if raw == nil {
			return fmt.Errorf("serialization: tensor %q: %w", name, tensor.ErrNilTensor)
		}
		dtype, err := dtypeName(raw.DType())
		if err != nil {
			return fmt.Errorf("serialization: tensor %q: %w", name, err)
		}

		shape := make([]int64, len(raw.Shape()))
		for i, d := range raw.Shape() {
			shape[i] = int64(d)
		}
		size := int64(raw.ByteSize())
		header[name] = TensorHeader{DType: dtype, Shape: shape, DataOffsets: [2]int64{offset, offset + size}}
		offset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("serialization: marshal header: %w", err)
	}
	if pad := len(headerJSON) % 8; pad != 0 {
		headerJSON = append(headerJSON, bytes.Repeat([]byte{' '}, 8-pad)...)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("serialization: write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("serialization: write header: %w", err)
	}
	for _, name := range names {
		if err := writeValues(w, tensors[name]); err != nil {
			return fmt.Errorf("serialization: write tensor %q: %w", name, err)
		}
	}
	return nil
}

func writeValues(w io.Writer, raw *tensor.RawTensor) error {
	switch raw.DType() {
	case tensor.Float32:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat32())
	case tensor.Float64:
		return binary.Write(w, binary.LittleEndian, raw.AsFloat64())
	default:
		return fmt.Errorf("%w: %s", tensor.ErrUnsupportedDType, raw.DType())
	}
}

// WriteFile writes tensors and metadata to path, replacing any existing file.
func WriteFile(path string, tensors map[string]*tensor.RawTensor, metadata map[string]string) (err error) {
	//nolint:gosec // G304: path is chosen by the user
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("serialization: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("serialization: %w", cerr)
		}
	}()

	return Write(f, tensors, metadata)
}

// Read decodes SafeTensors data, returning the tensors and the metadata.
func Read(r io.Reader) (map[string]*tensor.RawTensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("%w: header size: %v", ErrInvalidFormat, err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: header size %d exceeds %d", ErrInvalidFormat, headerSize, MaxHeaderSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("%w: header: %v", ErrInvalidFormat, err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &entries); err != nil {
		return nil, nil, fmt.Errorf("%w: header: %v", ErrInvalidFormat, err)
	}

	var metadata map[string]string
	if m, ok := entries[metadataKey]; ok {
		if err := json.Unmarshal(m, &metadata); err != nil {
			return nil, nil, fmt.Errorf("%w: metadata: %v", ErrInvalidFormat, err)
		}
		delete(entries, metadataKey)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("serialization: read data: %w", err)
	}

	tensors := make(map[string]*tensor.RawTensor, len(entries))
	for name, entry := range entries {
		raw, err := decodeTensor(entry, data)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: tensor %q: %v", ErrInvalidFormat, name, err)
		}
		tensors[name] = raw
	}
	return tensors, metadata, nil
}

// ReadFile reads a SafeTensors file.
func ReadFile(path string) (map[string]*tensor.RawTensor, map[string]string, error) {
	//nolint:gosec // G304: path is chosen by the user
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("serialization: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

func decodeTensor(entry json.RawMessage, data []byte) (*tensor.RawTensor, error) {
	var h TensorHeader
	if err := json.Unmarshal(entry, &h); err != nil {
		return nil, err
	}

	dtype, err := parseDTypeName(h.DType)
	if err != nil {
		return nil, err
	}

	shape := make(tensor.Shape, len(h.Shape))
	for i, d := range h.Shape {
		if d <= 0 || d > tensor.MaxElements {
			return nil, fmt.Errorf("%w: dimension %d is %d", tensor.ErrInvalidShape, i, d)
		}
		shape[i] = int(d)
	}

	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, err
	}

	start, end := h.DataOffsets[0], h.DataOffsets[1]
	if start < 0 || start > end || end > int64(len(data)) || end-start != int64(raw.ByteSize()) {
		return nil, fmt.Errorf("data offsets [%d, %d) do not fit %d bytes for shape %v", start, end, len(data), shape)
	}

	src := bytes.NewReader(data[start:end])
	switch dtype {
	case tensor.Float32:
		err = binary.Read(src, binary.LittleEndian, raw.AsFloat32())
	case tensor.Float64:
		err = binary.Read(src, binary.LittleEndian, raw.AsFloat64())
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

func dtypeName(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return "F32", nil
	case tensor.Float64:
		return "F64", nil
	default:
		return "", fmt.Errorf("%w: %s", tensor.ErrUnsupportedDType, dt)
	}
}

func parseDTypeName(s string) (tensor.DataType, error) {
	switch s {
	case "F32":
		return tensor.Float32, nil
	case "F64":
		return tensor.Float64, nil
	default:
		return 0, fmt.Errorf("%w: %q", tensor.ErrUnsupportedDType, s)
	}
}
