package tilemap

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"strings"
)

// Magic opens every TMAP file.
const Magic = "TMAP"

// ObjectNameSize is the fixed, zero padded width of an object name on disk.
const ObjectNameSize = 32

// maxCells bounds width*height so a corrupt header cannot request an
// arbitrarily large grid.
const maxCells = 1 << 24

// Load decodes the TMAP file at path.
func Load(path string, opts ...Option) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Decode(bufio.NewReader(f), opts...)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load %s: %w", path, err)
	}
	return m, nil
}

// LoadFS decodes the TMAP file name from fsys.
func LoadFS(fsys fs.FS, name string, opts ...Option) (*TileMap, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("tilemap: read %s: %w", name, err)
	}
	m, err := Decode(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("tilemap: load %s: %w", name, err)
	}
	return m, nil
}

// reader keeps the first error so the decode steps read straight through.
type reader struct {
	r   io.Reader
	buf [ObjectNameSize]byte
	err error
}

func (r *reader) read(what string, n int) []byte {
	if r.err != nil {
		return nil
	}
	b := r.buf[:n]
	if _, err := io.ReadFull(r.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncated
		}
		r.err = fmt.Errorf("tilemap: read %s: %w", what, err)
		return nil
	}
	return b
}

func (r *reader) u32(what string) uint32 {
	b := r.read(what, 4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *reader) i32(what string) int32 {
	return int32(r.u32(what))
}

func (r *reader) f32(what string) float32 {
	return math.Float32frombits(r.u32(what))
}

// Decode reads one TMAP image from r. Either the whole map is returned or an
// error wrapping one of the package sentinels (or the underlying I/O error).
func Decode(r io.Reader, opts ...Option) (*TileMap, error) {
	in := &reader{r: r}

	magic := in.read("magic", len(Magic))
	if in.err != nil {
		return nil, in.err
	}
	if string(magic) != Magic {
		return nil, fmt.Errorf("%w: got %q", ErrBadMagic, magic)
	}

	width := in.i32("width")
	height := in.i32("height")
	startX := in.i32("player start")
	startY := in.i32("player start")
	numTypes := in.u32("tile type count")
	if in.err != nil {
		return nil, in.err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if int64(width)*int64(height) > maxCells {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrBadDimensions, width, height, maxCells)
	}

	// Grown while reading so a bogus count fails on the short read rather
	// than on allocation.
	var types []TileType
	for i := uint32(0); i < numTypes && in.err == nil; i++ {
		types = append(types, TileType{
			Left:   in.f32("tile atlas"),
			Top:    in.f32("tile atlas"),
			Right:  in.f32("tile atlas"),
			Bottom: in.f32("tile atlas"),
		})
	}
	for i := range types {
		if b := in.read("tile flags", 1); b != nil {
			types[i].Flags = b[0]
		}
	}
	if in.err != nil {
		return nil, in.err
	}

	tiles := make([]uint8, int(width)*int(height))
	if _, err := io.ReadFull(r, tiles); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrTruncated
		}
		return nil, fmt.Errorf("tilemap: read grid: %w", err)
	}

	numObjects := in.u32("object count")
	var objects []Object
	for i := uint32(0); i < numObjects && in.err == nil; i++ {
		raw := in.read("object name", ObjectNameSize)
		if raw == nil {
			break
		}
		end := bytes.IndexByte(raw, 0)
		if end < 0 {
			return nil, fmt.Errorf("%w: object %d has no terminator", ErrBadObjectName, i)
		}
		name := string(raw[:end])
		objects = append(objects, Object{
			Name: name,
			X:    in.i32("object position"),
			Y:    in.i32("object position"),
		})
	}
	if in.err != nil {
		return nil, in.err
	}

	m, err := New(int(width), int(height), tiles, types, opts...)
	if err != nil {
		return nil, err
	}
	m.PlayerStartX = startX
	m.PlayerStartY = startY
	m.Objects = objects

	log.Printf("tilemap: loaded %dx%d, %d tile types, %d objects", m.Width, m.Height, len(m.types), len(m.Objects))
	return m, nil
}

// Encode writes m in the TMAP layout read by Decode.
func (m *TileMap) Encode(w io.Writer) error {
	for i, obj := range m.Objects {
		if len(obj.Name) >= ObjectNameSize || strings.IndexByte(obj.Name, 0) >= 0 {
			return fmt.Errorf("%w: object %d name %q must be under %d bytes without NUL", ErrBadObjectName, i, obj.Name, ObjectNameSize)
		}
	}

	size := len(Magic) + 5*4 + len(m.types)*17 + len(m.tiles) + 4 + len(m.Objects)*(ObjectNameSize+8)
	buf := make([]byte, 0, size)
	le := binary.LittleEndian

	buf = append(buf, Magic...)
	buf = le.AppendUint32(buf, uint32(int32(m.Width)))
	buf = le.AppendUint32(buf, uint32(int32(m.Height)))
	buf = le.AppendUint32(buf, uint32(m.PlayerStartX))
	buf = le.AppendUint32(buf, uint32(m.PlayerStartY))
	buf = le.AppendUint32(buf, uint32(len(m.types)))
	for _, t := range m.types {
		buf = le.AppendUint32(buf, math.Float32bits(t.Left))
		buf = le.AppendUint32(buf, math.Float32bits(t.Top))
		buf = le.AppendUint32(buf, math.Float32bits(t.Right))
		buf = le.AppendUint32(buf, math.Float32bits(t.Bottom))
	}
	for _, t := range m.types {
		buf = append(buf, t.Flags)
	}
	buf = append(buf, m.tiles...)
	buf = le.AppendUint32(buf, uint32(len(m.Objects)))
	for _, obj := range m.Objects {
		var name [ObjectNameSize]byte
		copy(name[:], obj.Name)
		buf = append(buf, name[:]...)
		buf = le.AppendUint32(buf, uint32(obj.X))
		buf = le.AppendUint32(buf, uint32(obj.Y))
	}

	_, err := w.Write(buf)
	return err
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (m *TileMap) MarshalBinary() ([]byte, error) {
	var b bytes.Buffer
	if err := m.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
