package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drbobbeaty/Quip/dbprep"
)

func TestClearStorage(t *testing.T) {
	os.Setenv("DBPREP_PATH", filepath.Join("..", "..", "dbprep"))
	if err := dbprep.ReinitializeAll(); err != nil {
		t.Errorf("%v", err)
	}
}
