package utils

import (
	"bytes"
	"expvar"
	"fmt"
	"io"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"
	"sync"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Run records one forced pipeline evaluation.
type Run struct {
	StartTime time.Time
	Duration  time.Duration
	Entries   int64
}

// Runs is the sequence of recorded evaluations.  The HTTP figure
// handlers read it while the run loop appends, so every access goes
// through the mutex.
type Runs struct {
	mu   sync.Mutex
	runs []*Run
}

// String is required by interface expvar.Var.
func (rs *Runs) String() string {
	var buf bytes.Buffer
	for i, r := range rs.snapshot() {
		fmt.Fprintf(&buf, "%05d: %s\t%s\t%d\n",
			i, r.StartTime, r.Duration, r.Entries)
	}
	return buf.String()
}

func (rs *Runs) Start() *Run {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r := &Run{StartTime: time.Now()}
	rs.runs = append(rs.runs, r)
	return r
}

func (rs *Runs) End(entries int64) *Run {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	r := rs.runs[len(rs.runs)-1]
	r.Duration = time.Since(r.StartTime)
	r.Entries = entries
	return r
}

// snapshot copies the recorded runs for rendering.
func (rs *Runs) snapshot() []Run {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	out := make([]Run, len(rs.runs))
	for i, r := range rs.runs {
		out[i] = *r
	}
	return out
}

// EnableExpvar publishes completed runs as an expvar and serves
// progress figures over HTTP.
func EnableExpvar(addr string) *Runs {
	rs := new(Runs)

	expvar.Publish("Runs", rs)
	http.Handle("/progress/entries", newEntriesFigureHandler(rs))
	http.Handle("/progress/duration", newDurationFigureHandler(rs))

	go func() {
		if e := http.ListenAndServe(addr, nil); e != nil {
			log.Fatalf("ListenAndServe on %s failed: %v", addr, e)
		}
	}()

	return rs
}

func newEntriesFigureHandler(rs *Runs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs := rs.snapshot()
		ps := make(plotter.XYs, 0, len(runs))
		for i := range runs {
			if runs[i].Duration > 0 {
				ps = append(ps,
					plotter.XY{X: float64(i), Y: float64(runs[i].Entries)})
			}
		}
		if e := plotFigure(w, ps, "Run", "Entries"); e != nil {
			http.Error(w, e.Error(), http.StatusInternalServerError)
		}
	}
}

func newDurationFigureHandler(rs *Runs) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runs := rs.snapshot()
		ps := make(plotter.XYs, 0, len(runs))
		for i := range runs {
			if runs[i].Duration > 0 {
				ps = append(ps, plotter.XY{
					X: float64(i), Y: runs[i].Duration.Seconds()})
			}
		}
		if e := plotFigure(w, ps, "Run", "Duration (s)"); e != nil {
			http.Error(w, e.Error(), http.StatusInternalServerError)
		}
	}
}

func plotFigure(w io.Writer, ps plotter.XYs, xLabel, yLabel string) error {
	p := plot.New()
	p.Title.Text = strings.Join(os.Args, " ")
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	p.Add(plotter.NewGrid())
	if e := plotutil.AddLinePoints(p, "", ps); e != nil {
		return fmt.Errorf("plotutil.AddLinePoints failed: %v", e)
	}

	wt, e := p.WriterTo(vg.Points(640), vg.Points(480), "png")
	if e != nil {
		return fmt.Errorf("Rendering figure failed: %v", e)
	}
	if _, e := wt.WriteTo(w); e != nil {
		return fmt.Errorf("Writing figure failed: %v", e)
	}
	return nil
}
