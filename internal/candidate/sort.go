package candidate

import "sort"

func sortBySNR(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		return cands[i].SNR > cands[j].SNR
	})
}
