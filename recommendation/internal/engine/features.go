package engine

import (
	"math"
	"sort"
	"time"
)

// LedgerEntry is one borrow as seen by the pipeline.
type LedgerEntry struct {
	StudentID  int       `json:"studentId"`
	BookID     int       `json:"bookId"`
	BorrowDate time.Time `json:"borrowDate"`
}

// Snapshot is a point-in-time read of the borrow ledger.
// StudentIDs lists the active students; entries of other students are ignored.
type Snapshot struct {
	StudentIDs []int
	Entries    []LedgerEntry
}

// FeatureVector summarises the borrowing behaviour of one student.
//
// Layout: one L2-normalised borrow-count dimension per book in the
// vocabulary, followed by frequency, recency and diversity, each in [0, 1].
// A student without borrows gets the all-zero vector.
type FeatureVector struct {
	StudentID int
	Values    []float64
}

const (
	behaviourDims = 3
	// recencyScaleDays controls how fast the recency feature decays.
	recencyScaleDays = 30.0
)

// Features is the output of BuildFeatures.
type Features struct {
	Vocabulary []int
	Vectors    []FeatureVector
	// Transactions maps each active student to the distinct books they borrowed.
	Transactions map[int][]int
}

// BuildFeatures turns a ledger snapshot into one vector per active student,
// ordered by student id.
func BuildFeatures(snap Snapshot, now time.Time) Features {
	active := make(map[int]struct{}, len(snap.StudentIDs))
	for _, id := range snap.StudentIDs {
		active[id] = struct{}{}
	}

	counts := make(map[int]map[int]int)
	last := make(map[int]time.Time)
	totals := make(map[int]int)
	books := make(map[int]struct{})
	for _, e := range snap.Entries {
		if _, ok := active[e.StudentID]; !ok {
			continue
		}
		if counts[e.StudentID] == nil {
			counts[e.StudentID] = make(map[int]int)
		}
		counts[e.StudentID][e.BookID]++
		totals[e.StudentID]++
		books[e.BookID] = struct{}{}
		if e.BorrowDate.After(last[e.StudentID]) {
			last[e.StudentID] = e.BorrowDate
		}
	}

	vocab := make([]int, 0, len(books))
	for id := range books {
		vocab = append(vocab, id)
	}
	sort.Ints(vocab)
	index := make(map[int]int, len(vocab))
	for i, id := range vocab {
		index[id] = i
	}

	maxTotal := 0
	for _, t := range totals {
		if t > maxTotal {
			maxTotal = t
		}
	}

	students := CanonicalIDs(snap.StudentIDs)
	out := Features{
		Vocabulary:   vocab,
		Vectors:      make([]FeatureVector, 0, len(students)),
		Transactions: make(map[int][]int, len(students)),
	}
	for _, sid := range students {
		values := make([]float64, len(vocab)+behaviourDims)
		bookCounts := counts[sid]
		if len(bookCounts) == 0 {
			out.Vectors = append(out.Vectors, FeatureVector{StudentID: sid, Values: values})
			out.Transactions[sid] = nil
			continue
		}

		var norm float64
		tx := make([]int, 0, len(bookCounts))
		for bookID, c := range bookCounts {
			values[index[bookID]] = float64(c)
			norm += float64(c) * float64(c)
			tx = append(tx, bookID)
		}
		norm = math.Sqrt(norm)
		for i := range vocab {
			values[i] /= norm
		}

		total := totals[sid]
		tail := values[len(vocab):]
		tail[0] = float64(total) / float64(maxTotal)
		tail[1] = recency(now, last[sid])
		tail[2] = float64(len(bookCounts)) / float64(total)

		sort.Ints(tx)
		out.Transactions[sid] = tx
		out.Vectors = append(out.Vectors, FeatureVector{StudentID: sid, Values: values})
	}
	return out
}

func recency(now, last time.Time) float64 {
	days := now.Sub(last).Hours() / 24
	if days < 0 {
		days = 0
	}
	return 1 / (1 + days/recencyScaleDays)
}
