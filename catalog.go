package mrpt

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/HitLumino/mrpt/raster"
	"github.com/klauspost/compress/zstd"
	_ "github.com/mattn/go-sqlite3"
)

// Pixmap describes a cataloged image.
type Pixmap struct {
	SHA1   string
	Name   string
	Width  int
	Height int
	Colors int
}

// Catalog is a sqlite database of decoded pixmaps keyed by the SHA-1 of
// their source. Pixel data is stored zstd compressed.
type Catalog struct {
	db  *sql.DB
	enc *zstd.Encoder
	dec *zstd.Decoder
}

func NewCatalog(file string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("%s?_foreign_keys=on", file))
	if err != nil {
		return nil, err
	}
	// Writes come from several scan workers at once
	db.SetMaxOpenConns(1)

	if _, err = db.Exec("CREATE TABLE IF NOT EXISTS pixmap (id INTEGER PRIMARY KEY NOT NULL, sha1 TEXT NOT NULL UNIQUE, name TEXT NOT NULL, width INTEGER NOT NULL, height INTEGER NOT NULL, colors INTEGER NOT NULL, mask INTEGER, raster BLOB NOT NULL)"); err != nil {
		db.Close()
		return nil, err
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		db.Close()
		return nil, err
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		db.Close()
		return nil, err
	}

	return &Catalog{
		db:  db,
		enc: enc,
		dec: dec,
	}, nil
}

func (c *Catalog) Close() error {
	c.dec.Close()
	if err := c.enc.Close(); err != nil {
		c.db.Close()
		return err
	}
	return c.db.Close()
}

// Add stores the pixmap unless one with the same SHA-1 already exists and
// returns its id.
func (c *Catalog) Add(p Pixmap, m *raster.RGB) (int64, error) {
	var id int64
	switch err := c.db.QueryRow("SELECT id FROM pixmap WHERE sha1 = ?", p.SHA1).Scan(&id); err {
	case sql.ErrNoRows:
		var mask sql.NullInt64
		if m.HasMask {
			mask.Int64 = int64(m.Mask[0])<<16 | int64(m.Mask[1])<<8 | int64(m.Mask[2])
			mask.Valid = true
		}
		result, err := c.db.Exec("INSERT INTO pixmap (sha1, name, width, height, colors, mask, raster) VALUES (?, ?, ?, ?, ?, ?, ?)", p.SHA1, p.Name, p.Width, p.Height, p.Colors, mask, c.enc.EncodeAll(m.Pix, nil))
		if err != nil {
			return 0, err
		}
		return result.LastInsertId()
	case nil:
		return id, nil
	default:
		return 0, err
	}
}

// Find returns the pixmap with the given SHA-1, or nil if there isn't one.
func (c *Catalog) Find(sha string) (*Pixmap, *raster.RGB, error) {
	var (
		p    Pixmap
		mask sql.NullInt64
		b    []byte
	)
	switch err := c.db.QueryRow("SELECT sha1, name, width, height, colors, mask, raster FROM pixmap WHERE sha1 = ?", sha).Scan(&p.SHA1, &p.Name, &p.Width, &p.Height, &p.Colors, &mask, &b); err {
	case sql.ErrNoRows:
		return nil, nil, nil
	case nil:
		pix, err := c.dec.DecodeAll(b, nil)
		if err != nil {
			return nil, nil, err
		}

		m := raster.New(p.Width, p.Height)
		if len(pix) != len(m.Pix) {
			return nil, nil, errors.New("catalog: raster size mismatch")
		}
		copy(m.Pix, pix)

		if mask.Valid {
			m.SetMask(uint8(mask.Int64>>16), uint8(mask.Int64>>8), uint8(mask.Int64))
		}

		return &p, m, nil
	default:
		return nil, nil, err
	}
}

// List returns every cataloged pixmap ordered by name.
func (c *Catalog) List() ([]Pixmap, error) {
	rows, err := c.db.Query("SELECT sha1, name, width, height, colors FROM pixmap ORDER BY name, sha1")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []Pixmap
	for rows.Next() {
		var p Pixmap
		if err := rows.Scan(&p.SHA1, &p.Name, &p.Width, &p.Height, &p.Colors); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
