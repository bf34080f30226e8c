//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"machine"

	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs/fatfs"
)

// assetDir is where icon overrides live on the SD card.
const assetDir = "/kiosk/icons"

const maxSDFileBytes = 64 << 10

// mountSD mounts the PicoCalc SD slot read-only. No card, or a card without
// a FAT filesystem, yields nil.
func mountSD(l Logger) fs.FS {
	sd := sdcard.New(machine.SPI0, machine.GP18, machine.GP19, machine.GP16, machine.GP17)
	if err := sd.Configure(); err != nil {
		return nil
	}
	fat := fatfs.New(&sd).Configure(&fatfs.Config{SectorSize: fatfs.SectorSize})
	if err := fat.Mount(); err != nil {
		// Do not auto-format removable media.
		l.WriteLineString("hal: sd mount: " + err.Error())
		return nil
	}
	return &sdFS{fat: fat}
}

type sdFS struct {
	fat *fatfs.FATFS
}

// Open reads the whole file into memory; assets are small.
func (s *sdFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := s.fat.OpenFile(assetDir+"/"+name, os.O_RDONLY)
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: mapFatErr(err)}
	}
	data, err := io.ReadAll(io.LimitReader(f, maxSDFileBytes+1))
	_ = f.Close()
	if err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return &memFile{info: memInfo{name: name, size: int64(len(data))}, data: data}, nil
}

func mapFatErr(err error) error {
	var fr fatfs.FileResult
	if errors.As(err, &fr) {
		switch fr {
		case fatfs.FileResultNoFile, fatfs.FileResultNoPath:
			return fs.ErrNotExist
		case fatfs.FileResultDenied, fatfs.FileResultLocked:
			return fs.ErrPermission
		}
	}
	return fmt.Errorf("sd: %v", err)
}

type memFile struct {
	info memInfo
	data []byte
	off  int
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f.info, nil }
func (f *memFile) Close() error               { return nil }

func (f *memFile) Read(p []byte) (int, error) {
	if f.off >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += n
	return n, nil
}

type memInfo struct {
	name string
	size int64
}

func (i memInfo) Name() string       { return i.name }
func (i memInfo) Size() int64        { return i.size }
func (i memInfo) Mode() fs.FileMode  { return 0o444 }
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return false }
func (i memInfo) Sys() any           { return nil }
