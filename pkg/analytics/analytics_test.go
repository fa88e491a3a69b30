package analytics

import (
	"io"

	"github.com/charmbracelet/log"
)

func testAnalyzer() *Analyzer {
	return New(log.New(io.Discard))
}
