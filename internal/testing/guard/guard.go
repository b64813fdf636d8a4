package guard

import (
	"os"
	"sync"
)

var once sync.Once

func init() {
	once.Do(func() {
		if os.Getenv("DAIRYLEDGER_TEST_MODE") == "" {
			_ = os.Setenv("DAIRYLEDGER_TEST_MODE", "1")
		}
	})
}
