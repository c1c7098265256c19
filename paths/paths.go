// This file is part of SuperChocChip.
//
// SuperChocChip is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SuperChocChip is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SuperChocChip.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the OS/build specific configuration path. The final
// element of resource is treated as a filename and every element before it
// as a directory. The directories will be created if they do not exist.
//
// Empty strings in the resource list are ignored.
func ResourcePath(resource ...string) (string, error) {
	var dirs []string
	var file string

	for _, r := range resource {
		if r != "" {
			dirs = append(dirs, r)
		}
	}
	if len(resource) > 0 && resource[len(resource)-1] != "" {
		file = dirs[len(dirs)-1]
		dirs = dirs[:len(dirs)-1]
	}

	base, err := getBasePath(filepath.Join(dirs...))
	if err != nil {
		return "", err
	}

	return filepath.Join(base, file), nil
}

// makeDir creates the path if it does not already exist.
func makeDir(pth string) (string, error) {
	if _, err := os.Stat(pth); err == nil {
		return pth, nil
	}
	if err := os.MkdirAll(pth, 0700); err != nil {
		return "", err
	}
	return pth, nil
}
