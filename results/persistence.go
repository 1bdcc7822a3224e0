package results

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/omicsgo/featselect/cv"
	"github.com/omicsgo/featselect/evaluation"
	"github.com/omicsgo/featselect/importance"
	"github.com/omicsgo/featselect/pkg/errors"
)

func init() {
	// Register the test-metrics variants so the interface field round-trips.
	gob.Register(MetricsTable{})
	gob.Register(SplitMetrics{})
}

// snapshot is the gob wire form of a PipelineResults.
type snapshot struct {
	Selection   Selection
	CVResults   map[string]cv.MethodResult
	Importance  map[importance.Kind]map[string][]importance.Record
	Scores      []evaluation.MethodScore
	TestMetrics TestMetrics
}

// Save writes the container as an opaque gob snapshot.
func (p *PipelineResults) Save(w io.Writer) error {
	s := snapshot{
		Selection:   p.selection,
		CVResults:   p.cvResults,
		Importance:  p.tables.Snapshot(),
		Scores:      p.scores,
		TestMetrics: p.testMetrics,
	}
	if err := gob.NewEncoder(w).Encode(s); err != nil {
		return errors.Wrap(err, "encoding pipeline results")
	}
	return nil
}

// Load reads a container previously written by Save.
func Load(r io.Reader) (*PipelineResults, error) {
	var s snapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, errors.Wrap(err, "decoding pipeline results")
	}
	return &PipelineResults{
		selection:   s.Selection,
		cvResults:   s.CVResults,
		tables:      importance.FromSnapshot(s.Importance),
		scores:      s.Scores,
		testMetrics: s.TestMetrics,
	}, nil
}

// SaveFile writes the container snapshot to a file.
func (p *PipelineResults) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "creating results file")
	}
	defer file.Close()

	return p.Save(file)
}

// LoadFile reads a container snapshot from a file.
func LoadFile(filename string) (*PipelineResults, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "opening results file")
	}
	defer file.Close()

	return Load(file)
}
