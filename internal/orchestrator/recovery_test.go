package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sirmick/alfrd/ent/document"
	"github.com/sirmick/alfrd/ent/file"
)

func TestStaleDocumentResetsCoverEveryInProgressStatus(t *testing.T) {
	resets := staleDocumentResets()

	assert.Equal(t, document.StatusPending, resets[document.StatusOcrInProgress])
	assert.Equal(t, document.StatusFiled, resets[document.StatusSeriesSummarizing])
	assert.Equal(t, document.StatusSeriesSummarized, resets[document.StatusSeriesScoring])

	// Every in-progress sub-state the route table can claim into must
	// have a recovery mapping, or a crash would strand documents there.
	for _, route := range docRoutes() {
		if route.claimTo == "" {
			continue
		}
		_, ok := resets[route.claimTo]
		assert.True(t, ok, "no recovery reset for claimed status %s", route.claimTo)
	}
}

func TestStaleFileResets(t *testing.T) {
	resets := staleFileResets()
	assert.Equal(t, file.StatusPending, resets[file.StatusGenerating])
	assert.Equal(t, file.StatusOutdated, resets[file.StatusRegenerating])
}

func TestDocRoutesFollowLifecycleOrder(t *testing.T) {
	routes := docRoutes()

	want := []document.Status{
		document.StatusPending,
		document.StatusOcrCompleted,
		document.StatusClassified,
		document.StatusSummarized,
		document.StatusFiled,
		document.StatusSeriesSummarized,
	}
	got := make([]document.Status, len(routes))
	for i, r := range routes {
		got[i] = r.from
	}
	assert.Equal(t, want, got)

	// A claimed route must reset to the status it claims from, so a
	// retry makes the row claimable again.
	for _, r := range routes {
		if r.claimTo != "" {
			assert.Equal(t, r.from, r.resetTo, "claimed route %s must reset to its claim source", r.from)
		}
	}
}
