package search

import "github.com/poiesic/casematch/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterBuild(stats core.Stats)
	Finish(results []*core.SearchResult)
}

// Recorder receives one breadcrumb per search for the evidence panel.
type Recorder interface {
	Record(source, detail string)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                {}
func (n *noopMonitor) AfterBuild(_ core.Stats)       {}
func (n *noopMonitor) Finish(_ []*core.SearchResult) {}

// noopRecorder is a no-op implementation of Recorder
type noopRecorder struct{}

var _ Recorder = (*noopRecorder)(nil)

func (n *noopRecorder) Record(_, _ string) {}
