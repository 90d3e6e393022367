package backlight

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// DefaultRoot is the sysfs class directory of backlight devices.
const DefaultRoot = "/sys/class/backlight"

const (
	attrActual     = "actual_brightness"
	attrMax        = "max_brightness"
	attrBrightness = "brightness"
)

// Device is one backlight class device.
type Device struct {
	Name string
	path string
}

type sysfs struct {
	fs   afero.Fs
	root string
}

// devices lists the class directory. Entries are usually symlinks, so they
// are not filtered by type; callers skip devices missing attributes.
func (s sysfs) devices() ([]Device, error) {
	entries, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.root, err)
	}

	devices := make([]Device, 0, len(entries))
	for _, e := range entries {
		devices = append(devices, Device{Name: e.Name(), path: filepath.Join(s.root, e.Name())})
	}
	return devices, nil
}

func (s sysfs) readUint(dev Device, attr string) (uint32, bool) {
	data, err := afero.ReadFile(s.fs, filepath.Join(dev.path, attr))
	if err != nil {
		return 0, false
	}
	v, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// writeUint writes an existing attribute. Attributes are never created.
func (s sysfs) writeUint(dev Device, attr string, v uint32) error {
	f, err := s.fs.OpenFile(filepath.Join(dev.path, attr), os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(strconv.FormatUint(uint64(v), 10)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
