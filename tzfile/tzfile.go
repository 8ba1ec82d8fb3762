// Package tzfile reads and writes compiled zone data as TZif files laid
// out the way the system zoneinfo tree is: one file per zone name, with
// "/" in a name (e.g. "America/Los_Angeles") becoming a subdirectory
// separator. It is a standalone helper that persists or reloads a
// tzif.File snapshot of a zone through tzif's own Encode and DecodeFile;
// tzregistry does not use it.
package tzfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopherzone/tzcore/tzif"
)

// pathFor joins root with name's "/"-separated path components, the same
// layout zic writes under /usr/share/zoneinfo.
func pathFor(root, name string) string {
	return filepath.Join(root, filepath.FromSlash(name))
}

// Write encodes f as a TZif file at root/name, creating any intermediate
// directories name's "/" components require.
func Write(root, name string, f tzif.File) error {
	path := pathFor(root, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("tzfile: mkdir for %q: %w", name, err)
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("tzfile: create %q: %w", name, err)
	}
	defer out.Close()
	if err := f.Encode(out); err != nil {
		return fmt.Errorf("tzfile: encode %q: %w", name, err)
	}
	return nil
}

// Read decodes the TZif file at root/name.
func Read(root, name string) (tzif.File, error) {
	path := pathFor(root, name)
	in, err := os.Open(path)
	if err != nil {
		return tzif.File{}, fmt.Errorf("tzfile: open %q: %w", name, err)
	}
	defer in.Close()
	f, err := tzif.DecodeFile(in)
	if err != nil {
		return tzif.File{}, fmt.Errorf("tzfile: decode %q: %w", name, err)
	}
	return f, nil
}

// WriteAll writes every entry in zones under root, keyed by zone name.
func WriteAll(root string, zones map[string]tzif.File) error {
	for name, f := range zones {
		if err := Write(root, name, f); err != nil {
			return err
		}
	}
	return nil
}

// ReadAll reads every zone named in names from root.
func ReadAll(root string, names []string) (map[string]tzif.File, error) {
	zones := make(map[string]tzif.File, len(names))
	for _, name := range names {
		f, err := Read(root, name)
		if err != nil {
			return nil, err
		}
		zones[name] = f
	}
	return zones, nil
}
