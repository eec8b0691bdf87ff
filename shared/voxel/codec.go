package voxel

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Campos do frame binário de estrutura (formato wire do protobuf).
//
//	1: prompt (string)
//	2: coordenadas empacotadas (sint32 x, y, z, x, y, z, ...)
const (
	fieldPrompt protowire.Number = 1
	fieldCoords protowire.Number = 2
)

// ErrTruncatedCoords indica que o campo empacotado não contém um múltiplo de 3 valores.
var ErrTruncatedCoords = errors.New("voxel: lista de coordenadas truncada")

// MarshalStructure serializa uma estrutura para envio via WebSocket.
func MarshalStructure(s Structure) []byte {
	buf := make([]byte, 0, 16+len(s.Prompt)+len(s.Voxels)*6)
	if s.Prompt != "" {
		buf = protowire.AppendTag(buf, fieldPrompt, protowire.BytesType)
		buf = protowire.AppendString(buf, s.Prompt)
	}
	if len(s.Voxels) > 0 {
		packed := make([]byte, 0, len(s.Voxels)*6)
		for _, c := range s.Voxels {
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(c.X)))
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(c.Y)))
			packed = protowire.AppendVarint(packed, protowire.EncodeZigZag(int64(c.Z)))
		}
		buf = protowire.AppendTag(buf, fieldCoords, protowire.BytesType)
		buf = protowire.AppendBytes(buf, packed)
	}
	return buf
}

// UnmarshalStructure decodifica um frame gerado por MarshalStructure.
// Campos desconhecidos são ignorados.
func UnmarshalStructure(data []byte) (Structure, error) {
	var s Structure
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Structure{}, fmt.Errorf("voxel: tag inválida: %w", protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldPrompt && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(data)
			if n < 0 {
				return Structure{}, fmt.Errorf("voxel: prompt inválido: %w", protowire.ParseError(n))
			}
			s.Prompt = v
			data = data[n:]
		case num == fieldCoords && typ == protowire.BytesType:
			packed, n := protowire.ConsumeBytes(data)
			if n < 0 {
				return Structure{}, fmt.Errorf("voxel: coordenadas inválidas: %w", protowire.ParseError(n))
			}
			coords, err := unpackCoords(packed)
			if err != nil {
				return Structure{}, err
			}
			s.Voxels = append(s.Voxels, coords...)
			data = data[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Structure{}, fmt.Errorf("voxel: campo %d inválido: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
		}
	}
	return s, nil
}

func unpackCoords(packed []byte) ([]Coord, error) {
	var values []int32
	for len(packed) > 0 {
		v, n := protowire.ConsumeVarint(packed)
		if n < 0 {
			return nil, fmt.Errorf("voxel: varint inválido: %w", protowire.ParseError(n))
		}
		values = append(values, int32(protowire.DecodeZigZag(v)))
		packed = packed[n:]
	}
	if len(values)%3 != 0 {
		return nil, ErrTruncatedCoords
	}

	coords := make([]Coord, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		coords = append(coords, Coord{X: values[i], Y: values[i+1], Z: values[i+2]})
	}
	return coords, nil
}
