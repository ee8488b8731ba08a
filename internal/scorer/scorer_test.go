package scorer

import (
	"testing"

	"github.com/cwbudde/accelsearch/internal/candidate"
)

func TestScoreAttachesScores(t *testing.T) {
	t.Parallel()

	s := New(Acquisition{Tsamp: 1e-4, CenterFreq: 1400, ChannelWidth: 0.5, TotalBandwidth: 400})

	cands := []candidate.Candidate{{Frequency: 10, DM: 50}}

	s.Score(cands, func(c candidate.Candidate) []float64 {
		return []float64{1, 3, 9, 3, 1}
	}, func(c candidate.Candidate) []float64 {
		return []float64{8, 8.2, 7.9}
	})

	if cands[0].Scores == nil {
		t.Fatal("Scores is nil after Score()")
	}

	if cands[0].Scores.ExpectedWidth <= 0 {
		t.Errorf("ExpectedWidth = %v, want > 0", cands[0].Scores.ExpectedWidth)
	}

	if cands[0].Scores.DMCurveWidth <= 0 {
		t.Errorf("DMCurveWidth = %v, want > 0 for a peaked curve", cands[0].Scores.DMCurveWidth)
	}

	if cands[0].Scores.HarmonicConsistency < 0 {
		t.Errorf("HarmonicConsistency = %v, want >= 0", cands[0].Scores.HarmonicConsistency)
	}
}

func TestScoreNoCandidatesRemoved(t *testing.T) {
	t.Parallel()

	s := New(Acquisition{Tsamp: 1e-4, CenterFreq: 1400, ChannelWidth: 0.5})
	cands := []candidate.Candidate{{Frequency: 1}, {Frequency: 2}, {Frequency: 3}}

	s.Score(cands, nil, nil)

	if len(cands) != 3 {
		t.Fatalf("len(cands) = %d, want 3 (scorer must not remove candidates)", len(cands))
	}
}

func TestConsistencyZeroForIdenticalSNRs(t *testing.T) {
	t.Parallel()

	got := consistency([]float64{5, 5, 5})
	if got != 0 {
		t.Errorf("consistency = %v, want 0 for identical SNRs", got)
	}
}
