package sensitivity

import (
	"errors"

	"github.com/pfrederiksen/hindsight/internal/game"
)

// ErrBadMagnitude reports a non-positive swing magnitude.
var ErrBadMagnitude = errors.New("swing magnitude must be at least 1")

// Flip is a loss that becomes a win under an adjustment, with the adjusted
// goals kept for reporting.
type Flip struct {
	Record          game.Record
	AdjustedFor     int
	AdjustedAgainst int
}

// Split is one allocation of a total swing across offense and defense.
type Split struct {
	ForDelta     int
	AgainstDelta int
	Flips        int
}

// Row is the per-magnitude summary the report renders.
type Row struct {
	Magnitude    int
	OffenseFlips int
	DefenseFlips int
	Best         Split
}

// adjust applies a split to one record and reports whether its loss turns
// into a win. Goals against floor at zero.
func adjust(r game.Record, forDelta, againstDelta int) (adjFor, adjAgainst int, flipped bool) {
	adjFor = r.GoalsFor + forDelta
	adjAgainst = r.GoalsAgainst - againstDelta
	if adjAgainst < 0 {
		adjAgainst = 0
	}
	return adjFor, adjAgainst, r.Result == game.Loss && adjFor > adjAgainst
}

// FlipCount counts the records that flip under the given split.
func FlipCount(records []game.Record, forDelta, againstDelta int) int {
	n := 0
	for _, r := range records {
		if _, _, flipped := adjust(r, forDelta, againstDelta); flipped {
			n++
		}
	}
	return n
}

// Flipped returns the records that flip under the given split, in input
// order, with their adjusted goals.
func Flipped(records []game.Record, forDelta, againstDelta int) []Flip {
	var flips []Flip
	for _, r := range records {
		adjFor, adjAgainst, flipped := adjust(r, forDelta, againstDelta)
		if flipped {
			flips = append(flips, Flip{Record: r, AdjustedFor: adjFor, AdjustedAgainst: adjAgainst})
		}
	}
	return flips
}

// BestSplit searches every allocation of a total swing d and returns the
// one with the most flips. The returned deltas always sum to d.
func BestSplit(records []game.Record, d int) (Split, error) {
	if d < 1 {
		return Split{}, ErrBadMagnitude
	}
	best := bestSplit(d, func(forDelta, againstDelta int) int {
		return FlipCount(records, forDelta, againstDelta)
	})
	return best, nil
}

// bestSplit runs the argmax over k in [0, d] with ForDelta k and
// AgainstDelta d-k. Ties keep the smallest k, so equal counts prefer
// allocating the swing to defense.
func bestSplit(d int, count func(forDelta, againstDelta int) int) Split {
	best := Split{ForDelta: 0, AgainstDelta: d, Flips: count(0, d)}
	for k := 1; k <= d; k++ {
		if n := count(k, d-k); n > best.Flips {
			best = Split{ForDelta: k, AgainstDelta: d - k, Flips: n}
		}
	}
	return best
}

// Table computes the per-magnitude rows for every swing from 1 to max.
func Table(records []game.Record, max int) ([]Row, error) {
	if max < 1 {
		return nil, ErrBadMagnitude
	}

	rows := make([]Row, 0, max)
	for d := 1; d <= max; d++ {
		best, err := BestSplit(records, d)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Magnitude:    d,
			OffenseFlips: FlipCount(records, d, 0),
			DefenseFlips: FlipCount(records, 0, d),
			Best:         best,
		})
	}
	return rows, nil
}
