package global

import (
	"os"
	"path/filepath"
)

var (
	// ROOT is the executable directory.
	ROOT string
	Name string = "Club Calendar Service"
)

func init() {
	exe, err := os.Executable()
	if err != nil {
		ROOT = "./"
		return
	}
	ROOT = filepath.Dir(exe) + "/"
}
