// Package archive reads and writes a whole workspace as a single file.
//
// Layout:
//
//	"ORNA" | version (1 byte) | BLAKE3 digest (32 bytes) | zstd(CBOR payload)
//
// The digest covers the uncompressed payload, so a file that decompresses
// cleanly but was altered is still rejected.
package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/zeebo/blake3"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// Version is the archive format written by Export
const Version byte = 1

const maxPayload = 256 << 20

var magic = [4]byte{'O', 'R', 'N', 'A'}

var (
	ErrBadMagic           = errors.New("not an orion archive")
	ErrUnsupportedVersion = errors.New("unsupported archive version")
	ErrChecksumMismatch   = errors.New("archive checksum mismatch")
)

// Workspace is everything an archive holds
type Workspace struct {
	Canvases []models.Canvas
	Boards   []models.KanbanBoard
	Notes    models.NoteSnapshot
}

// payload is the CBOR form of a Workspace. Canvas elements are flattened to
// records because the element interface has no wire form of its own.
type payload struct {
	Canvases    []canvasRecord          `cbor:"1,keyasint"`
	Boards      []models.KanbanBoard    `cbor:"2,keyasint"`
	Notes       []models.Note           `cbor:"3,keyasint"`
	Collections []models.NoteCollection `cbor:"4,keyasint"`
}

type canvasRecord struct {
	ID        types.CanvasID         `cbor:"1,keyasint"`
	Title     string                 `cbor:"2,keyasint"`
	GroupID   types.GroupID          `cbor:"3,keyasint,omitempty"`
	Size      models.Vector2         `cbor:"4,keyasint"`
	CreatedAt time.Time              `cbor:"5,keyasint"`
	UpdatedAt time.Time              `cbor:"6,keyasint"`
	Elements  []models.ElementRecord `cbor:"7,keyasint"`
}

// checksumKey separates archive digests from any other BLAKE3 use
var checksumKey = [32]byte{
	'o', 'r', 'i', 'o', 'n', '.', 'a', 'r', 'c', 'h', 'i', 'v', 'e', '.',
	'p', 'a', 'y', 'l', 'o', 'a', 'd', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

var (
	encMode     cbor.EncMode
	decMode     cbor.DecMode
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	// Core Deterministic Encoding: the same workspace always yields the
	// same bytes, and therefore the same checksum
	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("archive: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("archive: CBOR decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("archive: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxPayload))
	if err != nil {
		panic("archive: zstd decoder initialization failed: " + err.Error())
	}
}

// Export writes ws to w
func Export(w io.Writer, ws Workspace) error {
	data, err := encMode.Marshal(toPayload(ws))
	if err != nil {
		return fmt.Errorf("failed to encode workspace: %w", err)
	}
	sum, err := checksum(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.WriteByte(Version)
	buf.Write(sum[:])
	buf.Write(zstdEncoder.EncodeAll(data, nil))

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return nil
}

// Import reads a workspace written by Export
func Import(r io.Reader) (Workspace, error) {
	var header [len(magic) + 1 + 32]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return Workspace{}, fmt.Errorf("failed to read archive header: %w", err)
	}
	if !bytes.Equal(header[:len(magic)], magic[:]) {
		return Workspace{}, ErrBadMagic
	}
	if v := header[len(magic)]; v != Version {
		return Workspace{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}
	var want [32]byte
	copy(want[:], header[len(magic)+1:])

	compressed, err := io.ReadAll(io.LimitReader(r, maxPayload))
	if err != nil {
		return Workspace{}, fmt.Errorf("failed to read archive body: %w", err)
	}
	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return Workspace{}, fmt.Errorf("zstd decompress: %w", err)
	}

	got, err := checksum(data)
	if err != nil {
		return Workspace{}, err
	}
	if got != want {
		return Workspace{}, ErrChecksumMismatch
	}

	var p payload
	if err := decMode.Unmarshal(data, &p); err != nil {
		return Workspace{}, fmt.Errorf("failed to decode workspace: %w", err)
	}
	return fromPayload(p)
}

func checksum(data []byte) ([32]byte, error) {
	var sum [32]byte
	hasher, err := blake3.NewKeyed(checksumKey[:])
	if err != nil {
		return sum, fmt.Errorf("blake3: %w", err)
	}
	hasher.Write(data)
	copy(sum[:], hasher.Sum(nil))
	return sum, nil
}

func toPayload(ws Workspace) payload {
	p := payload{
		Boards:      ws.Boards,
		Notes:       ws.Notes.Notes,
		Collections: ws.Notes.Collections,
	}
	for _, c := range ws.Canvases {
		rec := canvasRecord{
			ID:        c.ID,
			Title:     c.Title,
			GroupID:   c.GroupID,
			Size:      c.Size,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			Elements:  make([]models.ElementRecord, len(c.Elements)),
		}
		for i, e := range c.Elements {
			rec.Elements[i] = models.ToRecord(e)
		}
		p.Canvases = append(p.Canvases, rec)
	}
	return p
}

func fromPayload(p payload) (Workspace, error) {
	ws := Workspace{
		Boards: p.Boards,
		Notes:  models.NoteSnapshot{Notes: p.Notes, Collections: p.Collections},
	}
	for _, rec := range p.Canvases {
		c := models.Canvas{
			ID:        rec.ID,
			Title:     rec.Title,
			GroupID:   rec.GroupID,
			Size:      rec.Size,
			CreatedAt: rec.CreatedAt,
			UpdatedAt: rec.UpdatedAt,
			Elements:  make([]models.Element, 0, len(rec.Elements)),
		}
		for _, er := range rec.Elements {
			e, err := models.FromRecord(er)
			if err != nil {
				return Workspace{}, fmt.Errorf("canvas %s: %w", rec.ID, err)
			}
			c.Elements = append(c.Elements, e)
		}
		ws.Canvases = append(ws.Canvases, c)
	}
	return ws, nil
}
