package lower

import (
	"sync"
	"testing"

	"go.uber.org/zap"

	"github.com/abs0luty/pretty-regex/internal/ir"
)

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	if Logger() == nil {
		t.Fatal("default logger is nil")
	}

	l := zap.NewNop().Named("lower")
	SetLogger(l)
	if Logger() != l {
		t.Error("Logger() did not return the installed logger")
	}

	SetLogger(nil)
	if Logger() == nil || Logger() == l {
		t.Error("SetLogger(nil) did not restore a no-op logger")
	}
}

func TestSetLoggerWhileLowering(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	tree := ir.NewConcat(lit("a"), ir.NewAtLeast(digit, 1))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(zap.NewNop().Named("swap"))
		}()
		go func() {
			defer wg.Done()
			if got := Lower(tree); got != `a\d+` {
				t.Errorf("Lower() = %q", got)
			}
		}()
	}
	wg.Wait()
}
